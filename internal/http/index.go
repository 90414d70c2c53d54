package http

import "html/template"

// indexTemplate renders the team picker. Kept deliberately bare; this page is
// only ever loaded from inside the ballpark workshop.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Apple Server</title></head>
<body>
<h1>Apple Server</h1>
<form method="POST" action="/set_team">
	<label for="team_id">Select Team:</label>
	<select name="team_id" id="team_id">
	{{- range .Teams}}
		<option value="{{.ID}}"{{if eq .ID $.SelectedID}} selected{{end}}>{{.Name}}</option>
	{{- end}}
	</select>
	<button type="submit">Set Team</button>
</form>
<p>Pending triggers: {{.QueueDepth}}</p>
</body>
</html>
`))

type indexData struct {
	Teams      []teamOption
	SelectedID int
	QueueDepth int
}

type teamOption struct {
	ID   int
	Name string
}
