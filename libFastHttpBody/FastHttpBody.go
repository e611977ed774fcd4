package libFastHttpBody

import (
	"context"

	"github.com/fire-lib/httpRepresentation"
	"github.com/valyala/fasthttp"
)

// Adapters between fasthttp's native body storage and the generic
// Body. fasthttp owns its buffers and reuses them between requests,
// so buffered bodies are always copied out; streamed bodies wrap the
// engine's reader and surface its failures as SourceError.

// BodyFromRequestCtx returns the request body of an incoming call as
// a Body. A request read with fasthttp's StreamRequestBody option
// becomes a foreign streaming body, anything else is buffered.
func BodyFromRequestCtx(fast *fasthttp.RequestCtx) *httpRepresentation.Body {
	if fast.IsBodyStream() {
		stream := httpRepresentation.ChunkStreamFromReader(fast.RequestBodyStream())
		return httpRepresentation.BodyFromForeignStream(stream)
	}

	return httpRepresentation.BodyCopyFromBytes(fast.Request.Body())
}

// BodyFromRequest is BodyFromRequestCtx for a standalone request.
func BodyFromRequest(req *fasthttp.Request) *httpRepresentation.Body {
	if req.IsBodyStream() {
		stream := httpRepresentation.ChunkStreamFromReader(req.BodyStream())
		return httpRepresentation.BodyFromForeignStream(stream)
	}

	return httpRepresentation.BodyCopyFromBytes(req.Body())
}

// BodyFromResponse returns a client response body as a Body. With the
// client's StreamResponseBody option the engine hands out a reader,
// which becomes a foreign streaming body.
func BodyFromResponse(resp *fasthttp.Response) *httpRepresentation.Body {
	if resp.IsBodyStream() {
		stream := httpRepresentation.ChunkStreamFromReader(resp.BodyStream())
		return httpRepresentation.BodyFromForeignStream(stream)
	}

	return httpRepresentation.BodyCopyFromBytes(resp.Body())
}

// WriteBodyToResponse moves a Body into a fasthttp response. A body
// with a known length is buffered into the response, anything else is
// handed over as a body stream the engine drains while sending.
func WriteBodyToResponse(ctx context.Context, body *httpRepresentation.Body, resp *fasthttp.Response) error {
	if length, known := body.Len(); known {
		if length == 0 {
			resp.ResetBody()
			return nil
		}

		raw, err := body.Collect(ctx)
		if err != nil {
			return err
		}

		resp.SetBodyRaw(raw)
		resp.Header.SetContentLength(len(raw))
		return nil
	}

	resp.SetBodyStream(body.ToReader(ctx), -1)
	return nil
}
