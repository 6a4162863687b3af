// recs — mock-источник рекомендаций с эмуляцией сетевой латентности.
package recs

import (
	"context"
	"time"

	"github.com/nandeesh88/go-content-dashboard/internal/mockdata"
	"github.com/nandeesh88/go-content-dashboard/internal/models"
)

// Source выдаёт синтетические рекомендации.
type Source struct {
	gen     *mockdata.Generator
	latency time.Duration
}

// New создаёт источник. Отрицательная задержка трактуется как нулевая.
func New(gen *mockdata.Generator, latency time.Duration) *Source {
	if gen == nil {
		gen = mockdata.New()
	}
	if latency < 0 {
		latency = 0
	}
	return &Source{gen: gen, latency: latency}
}

// Recommendations возвращает count рекомендаций, выдержав задержку.
func (s *Source) Recommendations(ctx context.Context, count int) ([]models.ContentItem, error) {
	if s.latency > 0 {
		t := time.NewTimer(s.latency)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	return s.gen.Recommendations(count), nil
}
