package comparison

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
)

func testMatrix(t *testing.T) *Matrix {
	t.Helper()
	b := NewBuilder(testSource())
	m, err := b.Build([]uint{1, 2}, []uint{12})
	require.NoError(t, err)
	return m
}

func TestRenderCSVHeaderAndRows(t *testing.T) {
	m := testMatrix(t)
	data := RenderCSV(m)

	reader := csv.NewReader(bytes.NewReader(data))
	records, err := reader.ReadAll()
	require.NoError(t, err)

	// header + one row per service
	require.Len(t, records, 3)

	wantHeader := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		wantHeader[i] = col.Label
	}
	assert.Equal(t, wantHeader, records[0])
	assert.Equal(t, "サービス名", records[0][0])

	// service rows in matrix order, null cells as empty strings
	assert.Equal(t, "EC2", records[1][0])
	assert.Equal(t, "S3", records[2][0])
	for i, col := range m.Columns {
		if col.Key == "attr_12" {
			assert.Equal(t, "", records[1][i])
			assert.Equal(t, "3500", records[2][i])
		}
	}
}

func TestRenderCSVQuotesEveryField(t *testing.T) {
	m := testMatrix(t)
	data := RenderCSV(m)

	for _, line := range strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n") {
		assert.True(t, strings.HasPrefix(line, `"`), line)
		assert.True(t, strings.HasSuffix(line, `"`), line)
	}
}

func TestRenderCSVEscapesQuotes(t *testing.T) {
	m := &Matrix{
		Columns: []Column{{Key: "name", Label: `say "hi"`, BuiltIn: true, DataType: TypeText}},
		Rows:    []Row{{ServiceID: 1, ServiceName: "x", Cells: []*Value{ptr(TextValue(`a "quoted" cell`))}}},
	}
	data := RenderCSV(m)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `say "hi"`, records[0][0])
	assert.Equal(t, `a "quoted" cell`, records[1][0])
}

func ptr(v Value) *Value { return &v }

func TestBuildPDFHTMLIsTransposed(t *testing.T) {
	m := testMatrix(t)
	html, err := BuildPDFHTML(m)
	require.NoError(t, err)

	// header row carries the service names
	headerEnd := strings.Index(html, "</tr>")
	require.Greater(t, headerEnd, 0)
	header := html[:headerEnd]
	assert.Contains(t, header, "<th>EC2</th>")
	assert.Contains(t, header, "<th>S3</th>")

	// attributes become rows
	assert.Contains(t, html, "<th>"+LabelName+"</th>")
	assert.Contains(t, html, "<th>"+LabelMemoCount+"</th>")
	assert.Contains(t, html, "<th>Max throughput</th>")
	assert.Contains(t, html, "size: A4 landscape")
}

func TestBuildPDFHTMLEscapesMarkup(t *testing.T) {
	m := &Matrix{
		Columns: []Column{{Key: "name", Label: "name", BuiltIn: true, DataType: TypeText}},
		Rows: []Row{{
			ServiceID:   1,
			ServiceName: "<script>alert(1)</script>",
			Cells:       []*Value{ptr(TextValue("<b>bold</b>"))},
		}},
	}
	html, err := BuildPDFHTML(m)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>bold</b>")
}

type fakeBackend struct {
	pdf  []byte
	err  error
	wait bool // block until the context is done
}

func (f *fakeBackend) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	if f.wait {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.pdf, f.err
}

func TestPDFRendererSuccess(t *testing.T) {
	r := NewPDFRenderer(&fakeBackend{pdf: []byte("%PDF-1.7 fake")}, time.Second)

	out, err := r.Render(context.Background(), testMatrix(t))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), out)
}

func TestPDFRendererTimeout(t *testing.T) {
	r := NewPDFRenderer(&fakeBackend{wait: true}, 20*time.Millisecond)

	_, err := r.Render(context.Background(), testMatrix(t))
	require.Error(t, err)
	assert.Equal(t, "EXPORT_TIMEOUT", apperr.From(err).Code)
}

func TestPDFRendererBackendFailure(t *testing.T) {
	r := NewPDFRenderer(&fakeBackend{err: errors.New("chrome crashed")}, time.Second)

	_, err := r.Render(context.Background(), testMatrix(t))
	require.Error(t, err)
	assert.Equal(t, "EXPORT_FAILED", apperr.From(err).Code)
}
