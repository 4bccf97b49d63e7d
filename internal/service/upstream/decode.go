package upstream

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// 手動設定 Accept-Encoding 後 net/http 不會自動解壓，由 Decompress 處理
const AcceptEncoding = "br, zstd, gzip"

// Decompress 依 Content-Encoding 解壓；缺少標頭時以 magic number 猜測
func Decompress(raw []byte, h http.Header) ([]byte, error) {
	enc := strings.ToLower(strings.TrimSpace(h.Get("Content-Encoding")))
	switch enc {
	case "", "identity":
		switch {
		case isGzip(raw):
			return gunzipBytes(raw)
		case isZstd(raw):
			return zstdBytes(raw)
		default:
			return raw, nil
		}
	case "gzip", "x-gzip":
		return gunzipBytes(raw)
	case "deflate":
		return inflateZlibBytes(raw)
	case "zstd":
		return zstdBytes(raw)
	case "br":
		return brotliBytes(raw)
	default:
		return raw, nil
	}
}

// ---- Decompressors ----

func gunzipBytes(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(io.LimitReader(zr, maxResponseBytes))
}

func inflateZlibBytes(b []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(io.LimitReader(zr, maxResponseBytes))
}

func zstdBytes(b []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxResponseBytes))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(b, nil)
}

func brotliBytes(b []byte) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(b))
	return io.ReadAll(io.LimitReader(r, maxResponseBytes))
}

// ---- Simple magic number checks ----

func isGzip(b []byte) bool { return len(b) > 2 && b[0] == 0x1f && b[1] == 0x8b }

func isZstd(b []byte) bool {
	return len(b) >= 4 && b[0] == 0x28 && b[1] == 0xB5 && b[2] == 0x2F && b[3] == 0xFD
}
