package gallery

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

// currentSnapshot returns the published document and its index. Before the
// first successful content load there is nothing to render, which maps to
// service unavailability rather than an empty page.
func (s service) currentSnapshot() (module.Snapshot, error) {
	if s.snapshot == nil {
		return module.Snapshot{}, apperrors.EK(apperrors.KindUnavailable, "errors.unavailable", "no content snapshot is configured")
	}
	snap := s.snapshot()
	if snap.Document == nil || snap.Index == nil {
		return module.Snapshot{}, apperrors.EK(apperrors.KindUnavailable, "errors.unavailable", "content snapshot is not published")
	}
	return snap, nil
}
