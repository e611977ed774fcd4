package libFastHttpBody

import (
	"context"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/fire-lib/httpRepresentation"
	"github.com/klauspost/compress/gzip"
)

// Compression decorators over Body. The wrapped body is consumed
// through an io.Pipe whose producing side runs in its own goroutine,
// so the compressed body stays streaming whatever variant backs the
// original. Compression failures surface on read as SourceError.

func GzipCompressBody(ctx context.Context, body *httpRepresentation.Body, compressionLevel int) (*httpRepresentation.Body, error) {
	if (compressionLevel != gzip.NoCompression) &&
		(compressionLevel != gzip.BestSpeed) && (compressionLevel != gzip.BestCompression) &&
		(compressionLevel != gzip.DefaultCompression) && (compressionLevel != gzip.HuffmanOnly) {
		return nil, httpRepresentation.NewConfigError("invalid compression level")
	}

	reader := body.ToReader(ctx)
	pipeReader, pipeWriter := io.Pipe()

	go func() {
		writer, _ := gzip.NewWriterLevel(pipeWriter, compressionLevel)

		_, err := io.Copy(writer, reader)
		if closeErr := writer.Close(); err == nil {
			err = closeErr
		}

		_ = pipeWriter.CloseWithError(err)
	}()

	return httpRepresentation.BodyFromReader(pipeReader), nil
}

func GzipDecompressBody(ctx context.Context, body *httpRepresentation.Body) *httpRepresentation.Body {
	source := body.ToReader(ctx)
	pipeReader, pipeWriter := io.Pipe()

	go func() {
		reader, err := gzip.NewReader(source)
		if err != nil {
			_ = pipeWriter.CloseWithError(err)
			return
		}

		_, err = io.Copy(pipeWriter, reader)
		if closeErr := reader.Close(); err == nil {
			err = closeErr
		}

		_ = pipeWriter.CloseWithError(err)
	}()

	return httpRepresentation.BodyFromReader(pipeReader)
}

func BrotliCompressBody(ctx context.Context, body *httpRepresentation.Body, compressionLevel int) (*httpRepresentation.Body, error) {
	if (compressionLevel < brotli.BestSpeed) || (compressionLevel > brotli.BestCompression) {
		return nil, httpRepresentation.NewConfigError("invalid compression level")
	}

	reader := body.ToReader(ctx)
	pipeReader, pipeWriter := io.Pipe()

	go func() {
		writer := brotli.NewWriterLevel(pipeWriter, compressionLevel)

		_, err := io.Copy(writer, reader)
		if closeErr := writer.Close(); err == nil {
			err = closeErr
		}

		_ = pipeWriter.CloseWithError(err)
	}()

	return httpRepresentation.BodyFromReader(pipeReader), nil
}

func BrotliDecompressBody(ctx context.Context, body *httpRepresentation.Body) *httpRepresentation.Body {
	source := body.ToReader(ctx)
	pipeReader, pipeWriter := io.Pipe()

	go func() {
		reader := brotli.NewReader(source)

		_, err := io.Copy(pipeWriter, reader)
		_ = pipeWriter.CloseWithError(err)
	}()

	return httpRepresentation.BodyFromReader(pipeReader)
}
