package httpclient

import "net/http"

// HTTPClient abstrae el cliente HTTP para poder inyectarlo en los tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultHTTPClient no lleva timeout propio: la cota de las llamadas a los
// proveedores es el context y el límite de tokens del modelo.
func DefaultHTTPClient() *http.Client {
	return &http.Client{}
}
