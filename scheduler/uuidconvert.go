package scheduler

import (
	"github.com/gofrs/uuid/v5"
	googleuuid "github.com/google/uuid"

	"github.com/corebridge/featuregate/errs"
)

// convertGoogleToGofrs converts a github.com/google/uuid value into its
// github.com/gofrs/uuid/v5 equivalent, bridging gocron's uuid.v4-era
// identifiers to the rest of the codebase.
func convertGoogleToGofrs(id googleuuid.UUID) (uuid.UUID, error) {
	converted, err := uuid.FromBytes(id[:])
	if err != nil {
		return uuid.Nil, errs.Newf("convert google uuid to gofrs uuid: %w", err)
	}
	return converted, nil
}
