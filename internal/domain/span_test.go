package domain

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	t.Run("detached profile when ctx has none", func(t *testing.T) {
		profile, endProfile := GetProfile(context.Background())
		require.NotNil(t, profile)
		endProfile()
		require.NotNil(t, profile.TotalMs)
	})

	t.Run("spans from ctx profile", func(t *testing.T) {
		profile, _ := NewProfile()
		ctx := NewCtxWithProfile(context.Background(), profile)

		got, _ := GetProfile(ctx)
		require.Same(t, profile, got)

		span, endSpan := got.StartNewSpan("fetch snapshot")
		subCtx := NewCtxWithSubProfile(ctx, span)
		subProfile, _ := GetProfile(subCtx)
		_, endSub := subProfile.StartSpan("list records")
		endSub()
		endSpan()

		_, endEval := got.StartNewSpan("evaluate")
		endEval()

		bytes, err := profile.ToJsonBytes()
		require.NoError(t, err)

		spans := []map[string]any{}
		require.NoError(t, json.Unmarshal(bytes, &spans))
		require.Len(t, spans, 2)
		require.Equal(t, "fetch snapshot", spans[0]["name"])
		require.Len(t, spans[0]["subSpans"], 1)
		require.Equal(t, "evaluate", spans[1]["name"])
	})

	t.Run("concurrent spans", func(t *testing.T) {
		profile, _ := NewProfile()
		wg := sync.WaitGroup{}
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, end := profile.StartSpan("worker")
				end()
			}()
		}
		wg.Wait()
		require.Len(t, profile.Spans, 10)
	})
}
