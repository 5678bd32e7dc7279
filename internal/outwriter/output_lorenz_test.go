package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/citescope/internal/contract"
	"github.com/huangsam/citescope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCurve() schema.LorenzCurve {
	return schema.LorenzCurve{
		Label:         "virology",
		AuthorShare:   []float64{1.0 / 3, 2.0 / 3, 1.0},
		CitationShare: []float64{0.5, 5.0 / 6, 1.0},
	}
}

func TestWriteLorenzCurveText(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Precision: 4, Target: 0.5}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeLorenzCurveText(&buf, sampleCurve(), 1.0/3, cfg, fmtFloat, time.Millisecond)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "0.3333")
	assert.Contains(t, output, "0.5000")
	assert.Contains(t, output, "Lorenz curve for virology with 3 points")
	assert.Contains(t, output, "Top 0.3333 of authors account for 0.5000 of citations")
}

func TestWriteLorenzCurveTextNoThreshold(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Precision: 4}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeLorenzCurveText(&buf, sampleCurve(), -1.0, cfg, fmtFloat, time.Millisecond)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "account for")
}

func TestWriteCSVLorenzCurve(t *testing.T) {
	fmtFloat, _ := createFormatters(4)

	var buf bytes.Buffer
	err := writeCSVLorenzCurve(&buf, sampleCurve(), fmtFloat)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header + 3 points

	assert.Equal(t, "author_share,citation_share", lines[0])
	assert.Equal(t, "0.3333,0.5000", lines[1])
	assert.Equal(t, "1.0000,1.0000", lines[3])
}

func TestWriteJSONLorenzCurve(t *testing.T) {
	t.Run("with threshold", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeJSONLorenzCurve(&buf, sampleCurve(), 1.0/3))

		var result map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "virology", result["label"])
		assert.InDelta(t, 1.0/3, result["threshold_author_share"], 0.0001)
	})

	t.Run("without threshold", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeJSONLorenzCurve(&buf, sampleCurve(), -1.0))

		var result map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.NotContains(t, result, "threshold_author_share")
	})
}
