package filter_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/k0sproject/filter"
	"github.com/k0sproject/filter/filtertest"
	"github.com/k0sproject/filter/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		needle   string
		expected string
	}{
		{"hello world", "hello world", "world", "hello *****"},
		{"non-overlapping", "aaaa", "aa", "****"},
		{"trailing partial", "xab", "abc", "xab"},
		{"empty input", "", "x", ""},
		{"empty needle", "hello world\n", "", "hello world\n"},
		{"no trailing newline added", "pass", "pass", "****"},
		{"spans chunk boundaries", strings.Repeat("-", 40) + "secret" + strings.Repeat("-", 40), "secret", strings.Repeat("-", 40) + "******" + strings.Repeat("-", 40)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			err := filter.New(tc.needle).Run(context.Background(), strings.NewReader(tc.input), out)
			require.NoError(t, err)
			require.Equal(t, tc.expected, out.String())
		})
	}
}

func TestRunSmallChunks(t *testing.T) {
	out := &bytes.Buffer{}
	f := filter.New("secret", filter.WithChunkSize(1))
	err := f.Run(context.Background(), iotest.OneByteReader(strings.NewReader("my secret is secret")), out)
	require.NoError(t, err)
	require.Equal(t, "my ****** is ******", out.String())
}

func TestRunReadError(t *testing.T) {
	errBroken := errors.New("input broken")
	out := &bytes.Buffer{}
	in := io.MultiReader(strings.NewReader("secret"), iotest.ErrReader(errBroken))

	err := filter.New("secret").Run(context.Background(), in, out)
	require.ErrorIs(t, err, filter.ErrRead)
	require.ErrorIs(t, err, errBroken)
	require.Equal(t, 1, filter.ExitCode(err))
	require.Zero(t, out.Len(), "nothing is written when reading fails")
}

func TestRunOutOfMemory(t *testing.T) {
	out := &bytes.Buffer{}
	err := filter.New("x", filter.WithMaxSize(4)).Run(context.Background(), strings.NewReader("xxxxx"), out)
	require.ErrorIs(t, err, filter.ErrOutOfMemory)
	require.Equal(t, 1, filter.ExitCode(err))
	require.Zero(t, out.Len())
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestRunWriteError(t *testing.T) {
	err := filter.New("x").Run(context.Background(), strings.NewReader("abc"), errWriter{})
	require.ErrorIs(t, err, filter.ErrWrite)
	require.ErrorIs(t, err, io.ErrClosedPipe)
	require.Equal(t, 1, filter.ExitCode(err))
}

func TestRunLogging(t *testing.T) {
	mock := &filtertest.MockLogger{}
	f := filter.New("aa", filter.WithLogger(mock))

	out := &bytes.Buffer{}
	require.NoError(t, f.Run(context.Background(), strings.NewReader("aaaaa"), out))
	require.Equal(t, "****a", out.String())

	entries := mock.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "input accumulated", entries[0].Message)
	require.Equal(t, "input filtered", entries[1].Message)

	component, ok := entries[0].Value(log.KeyComponent)
	require.True(t, ok)
	require.Equal(t, "accumulator", component)

	matches, _ := entries[1].Value(log.KeyMatches)
	require.Equal(t, 2, matches)
	n, _ := entries[1].Value(log.KeyBytes)
	require.Equal(t, 5, n)

	mock.Reset()
	require.Empty(t, mock.Entries())

	out.Reset()
	require.NoError(t, f.Run(context.Background(), strings.NewReader("bbb"), out))
	require.Equal(t, "bbb", out.String())
	entry, ok := mock.Find("input filtered")
	require.True(t, ok)
	matches, _ = entry.Value(log.KeyMatches)
	require.Equal(t, 0, matches)
	require.Len(t, mock.Entries(), 2)
}

func TestNeedle(t *testing.T) {
	require.Equal(t, "-v", filter.New("-v").Needle())
}

func TestExitCode(t *testing.T) {
	require.Equal(t, 0, filter.ExitCode(nil))
	require.Equal(t, 1, filter.ExitCode(filter.ErrUsage.Wrapf("accepts 1 arg, received 0")))
}
