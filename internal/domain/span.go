package domain

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type Span struct {
	Name       string    `json:"name"`
	startTs    time.Time `json:"-"`
	subProfile *Profile  `json:"-"`

	SubSpans []*Span `json:"subSpans,omitempty"`
	Elapsed  *int64  `json:"elapsed"`
}

const ContextProfileKey = "performanceProfile"

// GetProfile returns the request profile, or a detached one when the
// caller was not started from an api request (cli, lambda warmup)
func GetProfile(ctx context.Context) (*Profile, func()) {
	profile, ok := ctx.Value(ContextProfileKey).(*Profile)
	if !ok || profile == nil {
		return NewProfile()
	}
	return profile, profile.End
}

func NewCtxWithProfile(ctx context.Context, profile *Profile) context.Context {
	return context.WithValue(ctx, ContextProfileKey, profile)
}

// Profile is a list of spans. Spans may be added from several
// goroutines while the snapshot is fetched
type Profile struct {
	mu      sync.Mutex
	Spans   []*Span
	startTs time.Time
	TotalMs *int64
}

func (p *Profile) End() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.TotalMs == nil {
		t := time.Since(p.startTs).Milliseconds()
		p.TotalMs = &t
	}
}

func (s *Span) End() {
	if s.Elapsed == nil {
		t := time.Since(s.startTs).Milliseconds()
		s.Elapsed = &t
	}
	if s.subProfile != nil {
		s.SubSpans = s.subProfile.Spans
	}
}

func NewProfile() (*Profile, func()) {
	newProfile := &Profile{
		Spans:   []*Span{},
		startTs: time.Now(),
	}
	return newProfile, newProfile.End
}

func NewSpan(name string) (*Span, func()) {
	newSpan := &Span{
		Name:    name,
		startTs: time.Now(),
	}
	return newSpan, newSpan.End
}

// StartSpan records a new span without ending the previous one
func (p *Profile) StartSpan(name string) (*Span, func()) {
	newSpan, endSpan := NewSpan(name)
	p.mu.Lock()
	p.Spans = append(p.Spans, newSpan)
	p.mu.Unlock()
	return newSpan, endSpan
}

// StartNewSpan ends the last span and begins a new one
func (p *Profile) StartNewSpan(name string) (*Span, func()) {
	newSpan, endSpan := NewSpan(name)
	p.mu.Lock()
	if len(p.Spans) > 0 {
		p.Spans[len(p.Spans)-1].End()
	}
	p.Spans = append(p.Spans, newSpan)
	p.mu.Unlock()
	return newSpan, endSpan
}

func (s *Span) NewSubProfile() (*Profile, func()) {
	if s.subProfile != nil {
		panic("attempting to override existing subprofile")
	}
	newProfile, end := NewProfile()
	s.subProfile = newProfile
	return newProfile, end
}

func (p *Profile) ToJsonBytes() ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return json.Marshal(p.Spans)
}

func NewCtxWithSubProfile(ctx context.Context, parentSpan *Span) context.Context {
	newProfile, _ := parentSpan.NewSubProfile()
	return NewCtxWithProfile(ctx, newProfile)
}
