// Package realip извлекает клиентский адрес из запроса с учётом прокси.
package realip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest возвращает адрес клиента: первый элемент X-Forwarded-For,
// если заголовок есть, иначе RemoteAddr без порта.
func FromRequest(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
