// Package render is the rendering collaborator: it takes a finished table,
// the chosen visualization type, and axis bindings, and writes a
// self-contained interactive HTML artifact. The profiling and insight
// engines never import this package.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"autoviz/internal/dataset"
	"autoviz/internal/profile"
	"autoviz/internal/utils"
)

// Bindings names the columns driving each visual channel. Empty fields are
// auto-bound from the table.
type Bindings struct {
	X, Y, Z   string
	Color     string
	SourceCol string
	TargetCol string
}

// AutoBind fills unset bindings from the table: the leading numeric columns
// become axes, the first categorical column becomes color, and edge-list
// columns are resolved by the structural keyword rules.
func AutoBind(t *dataset.Table, vizType string, b Bindings) Bindings {
	numeric := t.NumericColumns()
	pick := func(cur string, idx int) string {
		if cur != "" {
			return cur
		}
		if idx < len(numeric) {
			return numeric[idx].Name
		}
		names := t.Names()
		if idx < len(names) {
			return names[idx]
		}
		return ""
	}
	b.X = pick(b.X, 0)
	b.Y = pick(b.Y, 1)
	b.Z = pick(b.Z, 2)
	if b.Color == "" {
		if cats := t.TextColumns(); len(cats) > 0 {
			b.Color = cats[0].Name
		}
	}
	if vizType == profile.VizNetwork && (b.SourceCol == "" || b.TargetCol == "") {
		if src, tgt, ok := profile.SourceTargetColumns(t.Names()); ok {
			b.SourceCol, b.TargetCol = src, tgt
		}
	}
	return b
}

type pageData struct {
	Title    string
	VizType  string
	Bindings Bindings
	Columns  template.JS
	Rows     template.JS
}

var page = template.Must(template.New("viz").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.26.0.min.js"></script>
</head>
<body>
<div id="viz" style="width:100%;height:95vh"></div>
<script>
const vizType = {{.VizType}};
const bindings = {x: {{.Bindings.X}}, y: {{.Bindings.Y}}, z: {{.Bindings.Z}}, color: {{.Bindings.Color}}, source: {{.Bindings.SourceCol}}, target: {{.Bindings.TargetCol}}};
const columns = {{.Columns}};
const rows = {{.Rows}};
const col = name => rows.map(r => r[columns.indexOf(name)]);
let traces;
switch (vizType) {
case "network": {
  const nodes = [...new Set([...col(bindings.source), ...col(bindings.target)])];
  traces = [{type: "scatter3d", mode: "markers+text", text: nodes,
             x: nodes.map((_, i) => Math.cos(2*Math.PI*i/nodes.length)),
             y: nodes.map((_, i) => Math.sin(2*Math.PI*i/nodes.length)),
             z: nodes.map((_, i) => (i%2) ? 0.5 : -0.5)}];
  col(bindings.source).forEach((s, i) => {
    const t = col(bindings.target)[i];
    const si = nodes.indexOf(s), ti = nodes.indexOf(t);
    traces.push({type: "scatter3d", mode: "lines", showlegend: false,
                 x: [Math.cos(2*Math.PI*si/nodes.length), Math.cos(2*Math.PI*ti/nodes.length)],
                 y: [Math.sin(2*Math.PI*si/nodes.length), Math.sin(2*Math.PI*ti/nodes.length)],
                 z: [(si%2) ? 0.5 : -0.5, (ti%2) ? 0.5 : -0.5]});
  });
  break;
}
case "3d_surface":
  traces = [{type: "mesh3d", x: col(bindings.x), y: col(bindings.y), z: col(bindings.z)}];
  break;
case "3d_line":
  traces = [{type: "scatter3d", mode: "lines+markers", x: col(bindings.x), y: col(bindings.y), z: col(bindings.z)}];
  break;
case "3d_bar":
  traces = [{type: "bar", x: col(bindings.color || bindings.x), y: col(bindings.y)}];
  break;
case "3d_mesh":
  traces = [{type: "mesh3d", alphahull: 5, x: col(bindings.x), y: col(bindings.y), z: col(bindings.z)}];
  break;
case "generic_scatter":
  traces = [{type: "scatter", mode: "markers", x: col(bindings.x), y: col(bindings.y)}];
  break;
default:
  traces = [{type: "scatter3d", mode: "markers", x: col(bindings.x), y: col(bindings.y), z: col(bindings.z),
             marker: bindings.color ? {color: col(bindings.color).map((v, _, a) => [...new Set(a)].indexOf(v))} : {}}];
}
Plotly.newPlot("viz", traces, {title: {{.Title}}});
</script>
</body>
</html>
`))

// WriteHTML renders the table as a standalone HTML page at path.
func WriteHTML(t *dataset.Table, vizType, title, path string, b Bindings) error {
	b = AutoBind(t, vizType, b)
	if title == "" {
		title = defaultTitle(vizType, b)
	}

	cols, err := json.Marshal(t.Names())
	if err != nil {
		return fmt.Errorf("encode columns: %w", err)
	}
	rows := make([][]string, t.RowCount())
	for i := range rows {
		row := make([]string, t.ColumnCount())
		for j, c := range t.Columns() {
			row[j] = c.Cell(i)
		}
		rows[i] = row
	}
	rowJSON, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}

	var sb strings.Builder
	err = page.Execute(&sb, pageData{
		Title:    title,
		VizType:  vizType,
		Bindings: b,
		Columns:  template.JS(cols),
		Rows:     template.JS(rowJSON),
	})
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return utils.SafeWriteFile(path, []byte(sb.String()))
}

func defaultTitle(vizType string, b Bindings) string {
	display := strings.ReplaceAll(strings.TrimPrefix(vizType, "3d_"), "_", " ")
	if b.X != "" && b.Y != "" {
		return fmt.Sprintf("%s: %s vs %s", display, b.X, b.Y)
	}
	return display
}
