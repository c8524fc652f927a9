package provider

import (
	"fmt"
	"strings"
)

// Gender selects gendered datasets.
type Gender string

const (
	Female Gender = "f"
	Male   Gender = "m"
)

// ParseGender accepts "f", "female", "m" and "male" in any case.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "female":
		return Female, nil
	case "m", "male":
		return Male, nil
	}
	return "", fmt.Errorf("%w: gender %q", ErrInvalidArgument, s)
}

func (g Gender) validate() error {
	if g != Female && g != Male {
		return fmt.Errorf("%w: gender %q", ErrInvalidArgument, string(g))
	}
	return nil
}

// prefix is the dataset name prefix for gendered categories ("f_names").
func (g Gender) prefix() string {
	return string(g) + "_"
}

// HashAlgorithm selects how Personal.Password encodes its output.
type HashAlgorithm string

const (
	HashPlain  HashAlgorithm = ""
	HashMD5    HashAlgorithm = "md5"
	HashSHA1   HashAlgorithm = "sha1"
	HashSHA256 HashAlgorithm = "sha256"
	HashSHA512 HashAlgorithm = "sha512"
	HashBcrypt HashAlgorithm = "bcrypt"
)

// CardNetwork is a credit card issuing network.
type CardNetwork string

const (
	CardVisa       CardNetwork = "visa"
	CardMasterCard CardNetwork = "mastercard"
)

// BitcoinFormat is a bitcoin address format.
type BitcoinFormat string

const (
	BitcoinP2PKH BitcoinFormat = "p2pkh"
	BitcoinP2SH  BitcoinFormat = "p2sh"
)

// FileType groups file extensions.
type FileType string

const (
	FileSource     FileType = "source"
	FileText       FileType = "text"
	FileData       FileType = "data"
	FileAudio      FileType = "audio"
	FileVideo      FileType = "video"
	FileImage      FileType = "image"
	FileExecutable FileType = "executable"
	FileCompressed FileType = "compressed"
)

// FrameworkSide selects front-end or back-end frameworks.
type FrameworkSide string

const (
	FrontEnd FrameworkSide = "front"
	BackEnd  FrameworkSide = "back"
)
