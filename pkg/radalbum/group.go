package radalbum

import (
	"errors"

	"github.com/go-logr/logr"
)

// separatorHeading marks a photo that is grouped with the photos following it.
const separatorHeading = "/"

// maxPending is the largest number of separator photos a block can absorb.
const maxPending = 3

// ErrUnsupportedGroup is reported when too many separator photos precede a content photo.
var ErrUnsupportedGroup = errors.New("unsupported number of grouped photos")

// IsSeparator reports whether a photo belongs to the block of the next content photo.
func IsSeparator(p Photo) bool {
	return p.Title() == separatorHeading
}

// Group partitions photos into blocks. Photos headed "/" are held back and
// shown together with the next content photo, which always comes last in its
// block. At most three separator photos may precede a content photo, giving
// a block of four; longer runs are dropped and reported as ErrUnsupportedGroup.
// Separator photos without a following content photo are dropped.
func Group(photos []Photo, log logr.Logger) []Block {
	blocks := []Block{}
	pending := make([]Photo, 0, maxPending)

	for _, p := range photos {
		if IsSeparator(p) {
			pending = append(pending, p)
			continue
		}

		switch len(pending) {
		case 0:
			if IsChapterMarker(p) {
				blocks = append(blocks, NewChapterMarker(p, log))
			} else {
				blocks = append(blocks, &SinglePage{Photo: p})
			}
		case 1:
			blocks = append(blocks, &TwoUp{Images: [2]Photo{pending[0], p}})
		case 2:
			blocks = append(blocks, &ThreeUp{Images: [3]Photo{pending[0], pending[1], p}})
		case 3:
			blocks = append(blocks, &FourUp{Images: [4]Photo{pending[0], pending[1], pending[2], p}})
		default:
			log.Error(ErrUnsupportedGroup, "dropping photos", "count", len(pending)+1, "last", p.Location())
		}
		pending = pending[:0]
	}

	if len(pending) > 0 {
		log.Info("dropping trailing separator photos", "count", len(pending), "first", pending[0].Location())
	}

	return blocks
}
