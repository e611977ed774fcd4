package libFastHttpBody

import (
	"github.com/fire-lib/httpRepresentation"
	"github.com/valyala/fasthttp"
)

// HeaderValuesFromRequestHeader copies a fasthttp request header into
// a HeaderValues, keeping duplicated names and their order.
func HeaderValuesFromRequestHeader(fast *fasthttp.RequestHeader) *httpRepresentation.HeaderValues {
	values := httpRepresentation.NewHeaderValues()

	fast.VisitAll(func(key, value []byte) {
		values.Insert(string(key), httpRepresentation.NewHeaderValue(value))
	})

	return values
}

// HeaderValuesFromResponseHeader copies a fasthttp response header
// into a HeaderValues, keeping duplicated names and their order.
func HeaderValuesFromResponseHeader(fast *fasthttp.ResponseHeader) *httpRepresentation.HeaderValues {
	values := httpRepresentation.NewHeaderValues()

	fast.VisitAll(func(key, value []byte) {
		values.Insert(string(key), httpRepresentation.NewHeaderValue(value))
	})

	return values
}

// CopyHeaderValuesTo writes every stored value into a fasthttp
// response header, duplicates included.
func CopyHeaderValuesTo(values *httpRepresentation.HeaderValues, fast *fasthttp.ResponseHeader) {
	values.VisitAll(func(name string, value httpRepresentation.HeaderValue) {
		fast.AddBytesV(name, value.Bytes())
	})
}

// RequestHeaderFromCtx builds the generic request-header view over an
// incoming fasthttp call: remote address, method, uri, version and
// all header values.
func RequestHeaderFromCtx(fast *fasthttp.RequestCtx) *httpRepresentation.RequestHeader {
	header := httpRepresentation.NewRequestHeader(
		httpRepresentation.MethodNameToMethodCode(UnsafeString(fast.Method())),
		string(fast.RequestURI()),
	)

	header.Address = fast.RemoteAddr().String()

	if fast.Request.Header.IsHTTP11() {
		header.Version = httpRepresentation.HttpVersion11
	} else {
		header.Version = httpRepresentation.HttpVersion10
	}

	header.Values = HeaderValuesFromRequestHeader(&fast.Request.Header)

	return header
}

// WriteResponseHeaderTo applies the generic response header to a
// fasthttp response: status code, content type and every value.
func WriteResponseHeaderTo(header *httpRepresentation.ResponseHeader, resp *fasthttp.Response) {
	resp.SetStatusCode(header.StatusCode.Code())

	if !header.ContentType.IsEmpty() {
		resp.Header.SetContentType(header.ContentType.String())
	}

	CopyHeaderValuesTo(header.Values, &resp.Header)
}
