package portfolio

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/fastygo/portfolio/domain"
)

// Replayer re-applies sub-writes that the Writer parked in the retry buffer.
type Replayer struct {
	gw Gateway
}

func NewReplayer(gw Gateway) *Replayer {
	return &Replayer{gw: gw}
}

// Replay decodes payload as the record type named by entity and saves it again.
func (r *Replayer) Replay(ctx context.Context, entity string, payload []byte) error {
	switch entity {
	case EntityHero:
		return replayOne(ctx, payload, r.gw.SaveHero)
	case EntityAbout:
		return replayOne(ctx, payload, r.gw.SaveAbout)
	case EntityProject:
		return replayOne(ctx, payload, r.gw.SaveProject)
	case EntityCertificate:
		return replayOne(ctx, payload, r.gw.SaveCertificate)
	case EntityBlog:
		return replayOne(ctx, payload, r.gw.SaveBlog)
	case EntityStats:
		var stats []domain.Stat
		if err := json.Unmarshal(payload, &stats); err != nil {
			return errors.Wrap(err, "decode stats")
		}
		for _, result := range r.gw.SaveStats(ctx, stats) {
			if result.Err != nil {
				return errors.Wrapf(result.Err, "stat %d", result.Index)
			}
		}
		return nil
	default:
		return errors.Errorf("unknown entity %q", entity)
	}
}

func replayOne[T any, R any](ctx context.Context, payload []byte, save func(context.Context, *T) (R, error)) error {
	var record T
	if err := json.Unmarshal(payload, &record); err != nil {
		return errors.Wrap(err, "decode record")
	}
	_, err := save(ctx, &record)
	return err
}
