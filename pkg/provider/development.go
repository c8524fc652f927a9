package provider

import (
	"fmt"
	"strings"

	"github.com/getchurch/church/pkg/random"
)

// Development generates software tooling data.
type Development struct {
	base
}

// NewDevelopment returns a Development provider.
func NewDevelopment(opts ...Option) *Development {
	return &Development{base: newBase(opts)}
}

// Stack is a technology stack.
type Stack struct {
	FrontEnd string `json:"front_end"`
	BackEnd  string `json:"back_end"`
	DB       string `json:"db"`
	Other    string `json:"other"`
}

func (d *Development) SoftwareLicense() string {
	return random.Choice(d.rnd, softwareLicenses)
}

// Database returns a database name, restricted to NoSQL stores when nosql
// is set.
func (d *Development) Database(nosql bool) string {
	if nosql {
		return random.Choice(d.rnd, nosqlDatabases)
	}
	return random.Choice(d.rnd, sqlDatabases)
}

// Other returns a tool or practice such as "Docker" or "Scrum".
func (d *Development) Other() string {
	return random.Choice(d.rnd, otherTech)
}

func (d *Development) ProgrammingLanguage() (string, error) {
	return d.pickDefault("pro_lang")
}

// Framework returns a framework for the given side of the stack.
func (d *Development) Framework(side FrameworkSide) (string, error) {
	switch FrameworkSide(strings.ToLower(string(side))) {
	case FrontEnd:
		return d.pickDefault("frontend")
	case BackEnd:
		return d.pickDefault("backend")
	}
	return "", fmt.Errorf("%w: framework side %q", ErrInvalidArgument, string(side))
}

// StackOfTech returns a random stack.
func (d *Development) StackOfTech(nosql bool) (Stack, error) {
	front, err := d.Framework(FrontEnd)
	if err != nil {
		return Stack{}, err
	}
	back, err := d.Framework(BackEnd)
	if err != nil {
		return Stack{}, err
	}
	return Stack{
		FrontEnd: front,
		BackEnd:  back,
		DB:       d.Database(nosql),
		Other:    d.Other(),
	}, nil
}

// GithubRepo returns a GitHub repository URL.
func (d *Development) GithubRepo() (string, error) {
	return d.pickDefault("github_repos")
}

// OS returns an operating system or distribution name.
func (d *Development) OS() (string, error) {
	return d.pickDefault("os")
}
