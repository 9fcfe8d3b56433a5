package httpresult

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// readBody reads at most limit bytes. Closing the body when ctx is done
// unblocks a read stuck on the network; the caller then reports ctx.Err().
func readBody(ctx context.Context, body io.ReadCloser, limit int64) ([]byte, error) {
	if body == nil || body == http.NoBody {
		return nil, nil
	}

	stop := context.AfterFunc(ctx, func() { _ = body.Close() })
	defer stop()

	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, limit)
	}
	return data, nil
}

func closeBody(resp *http.Response) {
	if resp.Body != nil {
		_ = resp.Body.Close()
	}
}
