package middleware

import "net/http"

// EditLock corta las mutaciones mientras el candado de edición está puesto.
// Las lecturas pasan siempre; las rutas exentas (el toggle del candado, el
// wipe que ya se guarda solo en el core) también.
func EditLock(locked func() bool, exempt ...string) func(http.Handler) http.Handler {
	exemptSet := map[string]bool{}
	for _, p := range exempt {
		exemptSet[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			if exemptSet[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			if locked() {
				http.Error(w, "herd is locked", http.StatusLocked)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
