package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/fooder/core"
)

type stubNode struct {
	name string
	fn   func([]*core.Candidate) ([]*core.Candidate, error)
}

func (n *stubNode) Name() string { return n.name }
func (n *stubNode) Kind() Kind   { return KindFilter }

func (n *stubNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	return n.fn(candidates)
}

func TestPipeline_Run(t *testing.T) {
	dropFirst := &stubNode{name: "drop_first", fn: func(c []*core.Candidate) ([]*core.Candidate, error) {
		return c[1:], nil
	}}
	double := &stubNode{name: "double_score", fn: func(c []*core.Candidate) ([]*core.Candidate, error) {
		for _, cand := range c {
			cand.Score *= 2
		}
		return c, nil
	}}

	in := []*core.Candidate{core.NewCandidate(1), core.NewCandidate(2)}
	in[1].Score = 3

	out, err := (&Pipeline{Nodes: []Node{dropFirst, double}}).Run(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("Run = %v", err)
	}
	if len(out) != 1 || out[0].RecipeID != 2 || out[0].Score != 6 {
		t.Errorf("out = %+v, want [recipe 2, score 6]", out)
	}
}

func TestPipeline_RunError(t *testing.T) {
	boom := &stubNode{name: "boom", fn: func([]*core.Candidate) ([]*core.Candidate, error) {
		return nil, errors.New("boom")
	}}
	_, err := (&Pipeline{Nodes: []Node{boom}}).Run(context.Background(), nil, nil)
	if err == nil {
		t.Fatal("Run = nil error")
	}
}

func TestPipeline_Empty(t *testing.T) {
	in := []*core.Candidate{core.NewCandidate(1)}
	out, err := (&Pipeline{}).Run(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("Run = %v", err)
	}
	if len(out) != 1 {
		t.Errorf("out = %v, want passthrough", out)
	}
}
