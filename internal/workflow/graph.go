package workflow

import (
	"context"
	"fmt"
	"time"

	"clinic-assistant/internal/classifier"
	"clinic-assistant/internal/conversation"
	"clinic-assistant/internal/model"
	"clinic-assistant/pkg/log"
)

// Node is one processing step. It reads the state and returns the changes
// to merge into it.
type Node interface {
	Name() string
	Run(ctx context.Context, st *conversation.State) (*conversation.Delta, error)
}

// IntentClassifier picks the path a conversation turn takes through the
// graph.
type IntentClassifier interface {
	Classify(ctx context.Context, st *conversation.State) (classifier.Category, error)
}

// Graph routes each conversation turn from intent classification through a
// fixed chain of nodes, checkpointing the state per thread.
type Graph struct {
	classifier IntentClassifier
	store      conversation.Store
	nodes      map[string]Node
	entry      map[classifier.Category]string
	edges      map[string]string
	l          log.Logger
	timeout    time.Duration
}

// New validates the wiring and returns the graph. Every category the
// classifier can produce must map to a registered node, and every edge must
// point at a registered node or End. Incomplete wiring is a construction
// error so it surfaces at startup, not mid-request.
func New(
	ic IntentClassifier,
	store conversation.Store,
	nodes []Node,
	entry map[classifier.Category]string,
	edges map[string]string,
	l log.Logger,
	timeout time.Duration,
) (*Graph, error) {
	if ic == nil {
		return nil, fmt.Errorf("%w: classifier is required", ErrInvalidGraph)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: checkpoint store is required", ErrInvalidGraph)
	}

	byName := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		if n.Name() == End {
			return nil, fmt.Errorf("%w: node with empty name", ErrInvalidGraph)
		}
		if _, dup := byName[n.Name()]; dup {
			return nil, fmt.Errorf("%w: duplicate node %q", ErrInvalidGraph, n.Name())
		}
		byName[n.Name()] = n
	}

	for _, cat := range classifier.Categories() {
		target, ok := entry[cat]
		if !ok {
			return nil, fmt.Errorf("%w: no node mapped for category %q", ErrInvalidGraph, cat)
		}
		if _, ok := byName[target]; !ok {
			return nil, fmt.Errorf("%w: category %q maps to unknown node %q", ErrInvalidGraph, cat, target)
		}
	}
	for cat := range entry {
		if _, ok := classifier.ParseCategory(string(cat)); !ok {
			return nil, fmt.Errorf("%w: entry for unknown category %q", ErrInvalidGraph, cat)
		}
	}

	for from, to := range edges {
		if _, ok := byName[from]; !ok {
			return nil, fmt.Errorf("%w: edge from unknown node %q", ErrInvalidGraph, from)
		}
		if to != End {
			if _, ok := byName[to]; !ok {
				return nil, fmt.Errorf("%w: edge from %q to unknown node %q", ErrInvalidGraph, from, to)
			}
		}
	}

	return &Graph{
		classifier: ic,
		store:      store,
		nodes:      byName,
		entry:      entry,
		edges:      edges,
		l:          l,
		timeout:    timeout,
	}, nil
}

// Run processes one user question on the given thread and returns the
// assistant's reply. Turns on the same thread are serialized.
func (g *Graph) Run(ctx context.Context, threadID, question string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	release := g.store.Acquire(threadID)
	defer release()

	st, found, err := g.store.Load(ctx, threadID)
	if err != nil {
		return "", fmt.Errorf("%s: load checkpoint: %w", LogPrefixRun, err)
	}
	if !found {
		st = &conversation.State{}
	}

	st.Apply(conversation.Delta{
		AppendTurns: []model.Turn{{Role: model.RoleUser, Content: question}},
	})
	// Per-turn fields from the previous turn must not leak into this one.
	st.QueryError = ""
	st.Answer = ""

	category, err := g.classifier.Classify(ctx, st)
	if err != nil {
		return "", fmt.Errorf("%s: classify: %w", LogPrefixRun, err)
	}
	st.Apply(conversation.Delta{Category: string(category)})
	g.l.Infof(ctx, "%s: thread=%s category=%s", LogPrefixRun, threadID, category)

	name := g.entry[category]
	for steps := 0; name != End; steps++ {
		if steps >= MaxSteps {
			return "", fmt.Errorf("%s: %w at node %q", LogPrefixRun, ErrStepLimit, name)
		}

		node := g.nodes[name]
		delta, err := node.Run(ctx, st)
		if err != nil {
			return "", fmt.Errorf("%s: node %s: %w", LogPrefixRun, name, err)
		}
		if delta != nil {
			st.Apply(*delta)
		}

		name = g.edges[name]
	}

	if st.Answer == "" {
		return "", fmt.Errorf("%s: %w", LogPrefixRun, ErrNoAnswer)
	}

	if err := g.store.Save(ctx, threadID, st); err != nil {
		return "", fmt.Errorf("%s: save checkpoint: %w", LogPrefixRun, err)
	}

	return st.Answer, nil
}
