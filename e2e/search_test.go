//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func quitAndWait(t *testing.T, tf *TUITestFramework) {
	t.Helper()
	require.NoError(t, tf.Quit())
	exited, err := tf.WaitExit(2 * time.Second)
	require.True(t, exited, "app did not exit after quit")
	require.NoError(t, err)
}

func TestSearchSelectAndOpen(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Search("red"))
	require.True(t, tf.SeePlain("Red Shoes"), "results should list Red Shoes")
	require.True(t, tf.SeePlain("PRODUCTS"))

	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain("> Red Shoes"), "first option should be selected")

	require.NoError(t, tf.SendEnter())
	require.True(t, tf.SeePlain("Opened /products/red-shoes"), "status bar should show the destination")

	quitAndWait(t, tf)
	require.True(t, strings.Contains(tf.SnapshotPlain(), "last destination: /products/red-shoes"))
}

func TestEnterWithoutSelectionOpensSearchPage(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Search("linen"))
	require.NoError(t, tf.SendEnter())
	require.True(t, tf.SeePlain("Opened /search?q=linen"))

	quitAndWait(t, tf)
}

func TestNoResultsAndEscape(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Search("zzz"))
	require.True(t, tf.SeePlain(`No results found for "zzz"`))

	require.NoError(t, tf.Escape())
	// q is plain text inside the popup, so exiting proves the popup closed
	time.Sleep(200 * time.Millisecond)
	quitAndWait(t, tf)
	require.False(t, strings.Contains(tf.SnapshotPlain(), "last destination"))
}
