package httpx

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const HeaderClientID = "X-Client-ID"

type clientKey struct{}

// ClientID scopes carts per browser. Requests without the header get a
// fresh id, echoed back so the client can keep using it.
func ClientID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderClientID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderClientID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), clientKey{}, id)))
	})
}

func clientIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(clientKey{}).(string)
	return id
}
