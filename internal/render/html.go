package render

import (
	"fmt"
	"html/template"
	"io"
)

var tableBody = template.Must(template.New("cart").Parse(
	`{{- if .Empty -}}
<tr><td colspan="3">{{ .Placeholder }}</td></tr>
{{- else -}}
{{- range .Rows }}
<tr data-index="{{ .Index }}"><td>{{ .Name }}</td><td><input type="number" min="1" value="{{ .Quantity }}" class="cart-qty" data-index="{{ .Index }}"></td><td>{{ .LineTotal }}</td><td><button class="btn remove-item" data-index="{{ .Index }}">Remove</button></td></tr>
{{- end }}
<tr><td colspan="2" style="text-align:right"><strong>Total</strong></td><td><strong>{{ .Total }}</strong></td><td></td></tr>
{{- end }}
`))

// HTML writes m as the <tr> rows of the cart table body.
func HTML(w io.Writer, m DisplayModel) error {
	if err := tableBody.Execute(w, m); err != nil {
		return fmt.Errorf("tableBody.Execute: %w", err)
	}
	return nil
}
