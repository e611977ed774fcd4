package libFastHttpBody

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/fire-lib/httpRepresentation"
)

func TestGzipBodyRoundTrip(t *testing.T) {
	payload := strings.Repeat("compress me ", 500)

	compressed, err := GzipCompressBody(
		context.Background(),
		httpRepresentation.BodyFromString(payload),
		gzip.BestSpeed)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := GzipDecompressBody(context.Background(), compressed).
		Collect(context.Background())
	if err != nil {
		t.Fatal("round trip failed:", err)
	}

	if string(raw) != payload {
		t.Error("round trip corrupted the payload")
	}
}

func TestGzipInvalidLevel(t *testing.T) {
	_, err := GzipCompressBody(context.Background(), httpRepresentation.NewBody(), 42)

	var configErr *httpRepresentation.ConfigError
	if !errors.As(err, &configErr) {
		t.Error("an invalid compression level must fail with ConfigError, got:", err)
	}
}

func TestGzipDecompressGarbage(t *testing.T) {
	body := GzipDecompressBody(
		context.Background(),
		httpRepresentation.BodyFromString("this is not gzip"))

	_, err := body.Collect(context.Background())

	var sourceErr *httpRepresentation.SourceError
	if !errors.As(err, &sourceErr) {
		t.Error("corrupted input must surface as SourceError, got:", err)
	}
}

func TestBrotliBodyRoundTrip(t *testing.T) {
	payload := strings.Repeat("brotli payload ", 500)

	compressed, err := BrotliCompressBody(
		context.Background(),
		httpRepresentation.BodyFromString(payload),
		5)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := BrotliDecompressBody(context.Background(), compressed).
		Collect(context.Background())
	if err != nil {
		t.Fatal("round trip failed:", err)
	}

	if string(raw) != payload {
		t.Error("round trip corrupted the payload")
	}
}

func TestBrotliInvalidLevel(t *testing.T) {
	_, err := BrotliCompressBody(context.Background(), httpRepresentation.NewBody(), 99)

	var configErr *httpRepresentation.ConfigError
	if !errors.As(err, &configErr) {
		t.Error("an invalid compression level must fail with ConfigError, got:", err)
	}
}

func TestCompressedBodyStaysStreaming(t *testing.T) {
	compressed, err := GzipCompressBody(
		context.Background(),
		httpRepresentation.BodyFromString("small"),
		gzip.DefaultCompression)
	if err != nil {
		t.Fatal(err)
	}

	if _, known := compressed.Len(); known {
		t.Error("a compressed body has no known length ahead of time")
	}
	if compressed.IsEmpty() {
		t.Error("a compressed body must not report empty")
	}
}
