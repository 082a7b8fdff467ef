// Package demo is the feature tour: an ordered list of self-contained
// sections, each building literal sample data and printing what it does
// with it.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/marcodamonte/features/internal/config"
	"github.com/marcodamonte/features/internal/future"
)

// ErrUnknownSection is returned by Run when asked for a key no section has.
var ErrUnknownSection = errors.New("unknown section")

// Env is what every section may touch.
type Env struct {
	// Out receives demo output. Safe for concurrent writes.
	Out io.Writer

	Log *zap.Logger
	Cfg *config.Config

	// Now is the clock for the date/time section.
	Now func() time.Time

	// Pending collects work left running when a section returns (futures,
	// pool jobs). Draining it is the caller's choice.
	Pending *future.Group
}

// NewEnv wires an Env writing to w. A nil cfg means config.DefaultConfig().
func NewEnv(w io.Writer, log *zap.Logger, cfg *config.Config) *Env {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Env{
		Out:     zapcore.Lock(zapcore.AddSync(w)),
		Log:     log,
		Cfg:     cfg,
		Now:     time.Now,
		Pending: &future.Group{},
	}
}

// Section is one demonstration routine.
type Section struct {
	Key   string
	Title string
	Run   func(ctx context.Context, env *Env)
}

// Sections returns the tour in its fixed order.
func Sections() []Section {
	return []Section{
		{"text-blocks", "Text blocks — raw multi-line literal", demoTextBlock},
		{"shapes", "Sealed types — closed interface + type switch", demoShapes},
		{"switch", "Switch expressions — classify a shape", demoSwitch},
		{"threads", "Lightweight threads — one goroutine per task", demoThreads},
		{"records", "Records — value structs", demoRecords},
		{"grouping", "Streams — group by length", demoGrouping},
		{"optional", "Optional values", demoOptional},
		{"generics", "Generics — producer / consumer boxes", demoGenerics},
		{"future", "Deferred computation — Future + ThenAccept", demoFuture},
		{"map-filter", "Streams over a map — even keys", demoMapFilter},
		{"null-filter", "Streams — drop nils, double the rest", demoNullFilter},
		{"advanced-streams", "Streams — peek, skip, limit, distinct, sorted, collectors", demoAdvancedStreams},
		{"linked-map", "Insertion-ordered map — keep first on collision", demoLinkedMap},
		{"datetime", "Date/time — local date, local time, zoned time", demoDateTime},
		{"interfaces", "Interfaces — package-level and default behaviour", demoInterfaces},
		{"functional", "Function values — Function, Predicate, Consumer, Supplier", demoFunctional},
		{"marker", "Marker interfaces", demoMarker},
	}
}

// Run executes the sections named by keys in tour order, or every section
// when keys is empty. Unknown keys fail before anything runs.
func Run(ctx context.Context, env *Env, keys []string) error {
	all := Sections()
	selected := all
	if len(keys) > 0 {
		for _, k := range keys {
			if !slices.ContainsFunc(all, func(s Section) bool { return s.Key == k }) {
				return fmt.Errorf("%w: %q", ErrUnknownSection, k)
			}
		}
		selected = slices.DeleteFunc(slices.Clone(all), func(s Section) bool {
			return !slices.Contains(keys, s.Key)
		})
	}

	for _, s := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}
		env.Log.Debug("running section", zap.String("key", s.Key))
		section(env.Out, s.Title)
		s.Run(ctx, env)
	}
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
