package demo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/marcodamonte/features/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2026, 10, 19, 8, 30, 15, 250_000_000, time.UTC)

func testEnv(t *testing.T, buf *bytes.Buffer) *Env {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Async.Delay = 5 * time.Millisecond
	env := NewEnv(buf, zaptest.NewLogger(t), cfg)
	env.Now = func() time.Time { return fixedNow }
	return env
}

// runSection runs one section and drains whatever it left pending.
func runSection(t *testing.T, key string) string {
	t.Helper()
	var buf bytes.Buffer
	env := testEnv(t, &buf)
	require.NoError(t, Run(context.Background(), env, []string{key}))
	require.NoError(t, env.Pending.Wait(context.Background()))
	return buf.String()
}

func TestSectionOutput(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"text-blocks", []string{`"version": "1.0"`, `parsed → name="Advanced Language Features" version="1.0"`}},
		{"shapes", []string{"Circle with radius: 5.0", "Rectangle with length: 4.0 and breadth: 6.0"}},
		{"switch", []string{"Switch Expression Example: A Circle"}},
		{"records", []string{"Person: Alice, Age: 30", "Person[name=Alice, age=30]", "equal by value: true"}},
		{"grouping", []string{"5: [Alice, Diana]\n3: [Bob]\n7: [Charlie]\n"}},
		{"optional", []string{"Optional value: Alice", "no value present"}},
		{"generics", []string{
			"Box contains: Apple\nBox contains: Banana\nBox contains: 123\nBox contains: 456\n",
			"Added to Box: [100]\nAdded to Box: [seed, 100]\n",
		}},
		{"future", []string{"task scheduled", "Task Complete\n"}},
		{"map-filter", []string{"Filtered map (even keys): {2=Two, 4=Four}"}},
		{"null-filter", []string{"Filtered and mapped numbers: [2, 4, 8, 10]"}},
		{"advanced-streams", []string{
			"Peek: 10\n", "Number: 100\n", "Count: 10\n", "Sum: 550\n",
			"Parallel: 10\nParallel: 20\n", "Collected: [10, 20", "Max: 100\n",
			"Summary: IntSummaryStatistics{count=10, sum=550, min=10, average=55.000000, max=100}",
		}},
		{"linked-map", []string{"Insertion-ordered map: {5=Alice, 3=Bob, 7=Charlie}"}},
		{"datetime", []string{
			"Current Date: 2026-10-19\n",
			"Current Time: 08:30:15.250\n",
			"Current UTC Time: 2026-10-19T08:30:15.250Z[UTC]\n",
		}},
		{"interfaces", []string{"This is a static method in interface\nThis is a default method in interface\n"}},
		{"functional", []string{"Square of 5: 25", "Is string 'Hello' not empty? true", "HELLO\n", "Hello, World!", "composed: 9 squared"}},
		{"marker", []string{"Marker Interface Implemented.", "someType is marked: true", "Person is marked:   false"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			out := runSection(t, tt.key)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestThreadsRunsEveryTask(t *testing.T) {
	out := runSection(t, "threads")
	for _, task := range []string{"task 1 ", "task 2 ", "task 3 ", "task 4 ", "task 5 "} {
		assert.Equal(t, 1, strings.Count(out, "Running "+task+"on Goroutine[#"), task)
	}
}

func TestThreadsLogsCountersOnDrain(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var buf bytes.Buffer
	env := testEnv(t, &buf)
	env.Log = zap.New(core)

	require.NoError(t, Run(context.Background(), env, []string{"threads"}))
	require.NoError(t, env.Pending.Wait(context.Background()))

	drained := logs.FilterMessage("threads drained").All()
	require.Len(t, drained, 1)
	fields := drained[0].ContextMap()
	assert.Equal(t, int64(5), fields["submitted"])
	assert.Equal(t, int64(5), fields["succeeded"])
	assert.Equal(t, int64(0), fields["failed"])
	assert.Equal(t, int64(0), fields["dropped"])
	assert.Zero(t, logs.FilterMessage("threads did not drain in time").Len())
}

func TestSectionsAreRepeatable(t *testing.T) {
	for _, s := range Sections() {
		if s.Key == "threads" || s.Key == "future" {
			continue // concurrent output order may vary
		}
		t.Run(s.Key, func(t *testing.T) {
			first, second := runSection(t, s.Key), runSection(t, s.Key)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("second run differs (-first +second):\n%s", diff)
			}
		})
	}
}

func TestRunAllInOrder(t *testing.T) {
	var buf bytes.Buffer
	env := testEnv(t, &buf)
	require.NoError(t, Run(context.Background(), env, nil))
	require.NoError(t, env.Pending.Wait(context.Background()))

	out := buf.String()
	last := -1
	for _, s := range Sections() {
		i := strings.Index(out, "━━━ "+s.Title+" ━━━")
		require.GreaterOrEqual(t, i, 0, "missing header for %s", s.Key)
		assert.Greater(t, i, last, "%s out of order", s.Key)
		last = i
	}
}

func TestRunSelectionKeepsTourOrder(t *testing.T) {
	out := runSection(t, "records") // sanity: single key works
	assert.Contains(t, out, "Records")

	var buf bytes.Buffer
	env := testEnv(t, &buf)
	require.NoError(t, Run(context.Background(), env, []string{"switch", "shapes"}))
	assert.Less(t, strings.Index(buf.String(), "Circle with radius"), strings.Index(buf.String(), "Switch Expression"))
}

func TestRunUnknownSection(t *testing.T) {
	var buf bytes.Buffer
	err := Run(context.Background(), testEnv(t, &buf), []string{"records", "nope"})
	assert.True(t, errors.Is(err, ErrUnknownSection))
	assert.Zero(t, buf.Len(), "nothing runs when a key is unknown")
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, testEnv(t, &buf), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSwitchExpressionReturnsLabel(t *testing.T) {
	assert.Equal(t, "A Circle", switchExpression(sampleCircle))
	assert.Equal(t, "A Rectangle", switchExpression(sampleRectangle))
}

func TestZonedInOtherZone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19T17:30:15.250+09:00[Asia/Tokyo]", zoned(fixedNow, loc))
}

func TestClockFractionGroups(t *testing.T) {
	day := func(h, m, s, ns int) time.Time { return time.Date(2026, 10, 19, h, m, s, ns, time.UTC) }
	tests := []struct {
		in   time.Time
		want string
	}{
		{day(8, 30, 0, 0), "08:30"},
		{day(8, 30, 15, 0), "08:30:15"},
		{day(8, 30, 0, 250_000_000), "08:30:00.250"},
		{day(8, 30, 15, 250_000), "08:30:15.000250"},
		{day(8, 30, 15, 1), "08:30:15.000000001"},
		{day(23, 59, 59, 123_456_789), "23:59:59.123456789"},
	}
	for _, tt := range tests {
		if got := clock(tt.in); got != tt.want {
			t.Errorf("clock(%s) = %q; want %q", tt.in.Format(time.RFC3339Nano), got, tt.want)
		}
	}
}

func TestParseManifest(t *testing.T) {
	m, err := parseManifest(manifest)
	require.NoError(t, err)
	assert.Equal(t, "A demonstration of modern language features", m.Description)

	_, err = parseManifest("{ unterminated")
	assert.Error(t, err)
}
