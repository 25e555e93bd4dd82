package transport

import "net/http"

// Cookies returns a middleware sending jar cookies with every request and storing response cookies back.
// Cookies already present on the request win over jar cookies with the same name.
func Cookies(jar http.CookieJar) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		if jar == nil {
			return next
		}
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			out := r.Clone(r.Context())
			present := map[string]bool{}
			for _, c := range out.Cookies() {
				present[c.Name] = true
			}
			for _, c := range jar.Cookies(out.URL) {
				if !present[c.Name] {
					out.AddCookie(c)
				}
			}
			resp, err := next.RoundTrip(out)
			if err != nil {
				return nil, err
			}
			if received := resp.Cookies(); len(received) > 0 {
				jar.SetCookies(out.URL, received)
			}
			return resp, nil
		})
	}
}
