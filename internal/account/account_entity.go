package account

import "strings"

// Account adalah satu baris login (kurir atau ops). Username adalah natural key,
// dibandingkan tanpa membedakan huruf besar/kecil.
type Account struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// FindByUsername mengembalikan match pertama (sheet tidak menjamin keunikan).
func FindByUsername(accounts []Account, username string) (Account, bool) {
	for _, a := range accounts {
		if strings.EqualFold(a.Username, username) {
			return a, true
		}
	}
	return Account{}, false
}
