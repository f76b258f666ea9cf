package api

import (
	module "github.com/mvaleri/atrium/internal/services/site/module"
	apperrors "github.com/mvaleri/atrium/internal/services/site/platform/errors"
)

type service struct {
	snapshot module.SnapshotFunc
}

func newService(snapshot module.SnapshotFunc) service {
	return service{snapshot: snapshot}
}

func (s service) currentSnapshot() (module.Snapshot, error) {
	if s.snapshot == nil {
		return module.Snapshot{}, apperrors.E(apperrors.KindUnavailable, "no content snapshot is configured")
	}
	snap := s.snapshot()
	if snap.Document == nil || snap.Index == nil {
		return module.Snapshot{}, apperrors.E(apperrors.KindUnavailable, "content snapshot is not published")
	}
	return snap, nil
}
