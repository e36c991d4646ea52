package comparison

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"time"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
)

// PDFBackend prints an HTML document to PDF bytes. The production
// implementation drives headless Chrome; tests plug in a fake.
type PDFBackend interface {
	PrintHTML(ctx context.Context, html string) ([]byte, error)
}

// PDFRenderer renders a matrix to a landscape A4 PDF via an HTML table.
// Unlike CSV the table is transposed: rows are attributes, columns are
// services. The asymmetry is kept on purpose for compatibility with the
// exports users already have.
type PDFRenderer struct {
	backend PDFBackend
	timeout time.Duration
}

func NewPDFRenderer(backend PDFBackend, timeout time.Duration) *PDFRenderer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PDFRenderer{backend: backend, timeout: timeout}
}

// Render builds the HTML table and hands it to the backend, bounded by
// the configured timeout. A deadline maps to EXPORT_TIMEOUT, any other
// backend failure to EXPORT_FAILED.
func (r *PDFRenderer) Render(ctx context.Context, m *Matrix) ([]byte, error) {
	html, err := BuildPDFHTML(m)
	if err != nil {
		return nil, apperr.ExportFailed(err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pdf, err := r.backend.PrintHTML(ctx, html)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperr.ExportTimeout()
		}
		return nil, apperr.ExportFailed(err)
	}
	return pdf, nil
}

// pdfRow is one table row: an attribute label plus one cell per service.
type pdfRow struct {
	Label string
	Cells []string
}

var pdfTemplate = template.Must(template.New("comparison").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4 landscape; margin: 10mm; }
  body { font-family: "Noto Sans CJK JP", "Hiragino Sans", sans-serif; font-size: 10pt; }
  h1 { font-size: 14pt; }
  table { border-collapse: collapse; width: 100%; table-layout: fixed; }
  th, td { border: 1px solid #666; padding: 4px 6px; word-wrap: break-word; vertical-align: top; }
  th { background: #f0f0f0; text-align: left; }
  td.empty { background: #fafafa; }
</style>
</head>
<body>
<h1>サービス比較 {{.GeneratedAt}}</h1>
<table>
  <tr>
    <th>項目</th>
    {{- range .Services}}
    <th>{{.}}</th>
    {{- end}}
  </tr>
  {{- range .Rows}}
  <tr>
    <th>{{.Label}}</th>
    {{- range .Cells}}
    <td{{if eq . ""}} class="empty"{{end}}>{{.}}</td>
    {{- end}}
  </tr>
  {{- end}}
</table>
</body>
</html>
`))

// BuildPDFHTML renders the transposed comparison table. Header row is
// the service names, then one row per matrix column.
func BuildPDFHTML(m *Matrix) (string, error) {
	data := struct {
		GeneratedAt string
		Services    []string
		Rows        []pdfRow
	}{
		GeneratedAt: m.GeneratedAt.Format("2006-01-02 15:04"),
	}
	for _, row := range m.Rows {
		data.Services = append(data.Services, row.ServiceName)
	}
	for i, col := range m.Columns {
		r := pdfRow{Label: col.Label}
		for _, row := range m.Rows {
			if cell := row.Cells[i]; cell != nil {
				r.Cells = append(r.Cells, cell.String())
			} else {
				r.Cells = append(r.Cells, "")
			}
		}
		data.Rows = append(data.Rows, r)
	}

	var buf bytes.Buffer
	if err := pdfTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
