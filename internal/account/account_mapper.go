package account

import "go-yourtask/internal/sheet"

// MapAccounts memetakan baris sheet login menjadi Account.
// Header dibuang dan baris tanpa username dilewati.
func MapAccounts(rows [][]string, table sheet.Table) []Account {
	body := sheet.Body(rows)
	out := make([]Account, 0, len(body))
	for _, cells := range body {
		r := table.Bind(cells)
		if !r.HasKeys() {
			continue
		}
		out = append(out, Account{
			Username: r.String(sheet.FieldUsername),
			Name:     r.String(sheet.FieldName),
		})
	}
	return out
}
