package template

import (
	"github.com/google/uuid"

	"github.com/getchurch/church/pkg/random"
)

// randReader adapts a random.Rand to io.Reader so uuid can draw from a
// seeded source.
type randReader struct {
	rnd *random.Rand
}

func (r randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rnd.IntN(256))
	}
	return len(p), nil
}

// rngUUID generates a UUID v4 string. A seeded source gives reproducible
// UUIDs; a nil source uses crypto/rand.
func rngUUID(rnd *random.Rand) (string, error) {
	if rnd == nil {
		return uuid.NewString(), nil
	}
	id, err := uuid.NewRandomFromReader(randReader{rnd: rnd})
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
