package httpclient

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"reflect"
	"strings"
	"testing"
)

func Test_HTTPRequest_FinalizeBody_golden(t *testing.T) {
	type golden struct {
		bodyBytes   []byte
		contentType string
	}
	type tc struct {
		name string
		req  HTTPRequest
		want golden
		err  string
	}

	cases := []tc{
		{
			name: "json body builds bytes and sets content-type",
			req: HTTPRequest{
				Body:     map[string]any{"a": "b"},
				BodyType: "application/json",
			},
			want: golden{
				bodyBytes:   mustJSON(t, map[string]any{"a": "b"}),
				contentType: "application/json",
			},
		},
		{
			name: "form body encodes and sets content-type",
			req: HTTPRequest{
				Body:     map[string]any{"a": "b", "n": 123},
				BodyType: "application/x-www-form-urlencoded",
			},
			want: golden{
				contentType: "application/x-www-form-urlencoded",
			},
		},
		{
			name: "nil body returns nil bytes and empty content-type",
			req: HTTPRequest{
				Body:     nil,
				BodyType: "application/json",
			},
			want: golden{
				bodyBytes:   nil,
				contentType: "",
			},
		},
		{
			name: "unsupported body type errors",
			req: HTTPRequest{
				Body:     map[string]any{"a": "b"},
				BodyType: "text/plain",
			},
			err: "unsupported body_type",
		},
		{
			name: "if BodyBytes already set, do not overwrite",
			req: HTTPRequest{
				Body:        map[string]any{"a": "b"},
				BodyType:    "application/json",
				BodyBytes:   []byte("raw"),
				ContentType: "",
			},
			want: golden{
				bodyBytes:   []byte("raw"),
				contentType: "",
			},
		},
		{
			name: "if BodyBytes set and ContentType set, keep both",
			req: HTTPRequest{
				BodyBytes:   []byte("raw"),
				ContentType: "application/custom",
			},
			want: golden{
				bodyBytes:   []byte("raw"),
				contentType: "application/custom",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.FinalizeBody()
			if c.err != "" {
				if err == nil || !strings.Contains(err.Error(), c.err) {
					t.Fatalf("FinalizeBody err=%v; want contains %q", err, c.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FinalizeBody unexpected error: %v", err)
			}

			if c.name == "form body encodes and sets content-type" {
				s := string(c.req.BodyBytes)
				if !(strings.Contains(s, "a=b") && strings.Contains(s, "n=123")) {
					t.Fatalf("form encoding=%q; want contains a=b and n=123", s)
				}
			} else if !reflect.DeepEqual(c.req.BodyBytes, c.want.bodyBytes) {
				t.Fatalf("BodyBytes=%q; want %q", c.req.BodyBytes, c.want.bodyBytes)
			}

			if c.req.ContentType != c.want.contentType {
				t.Fatalf("ContentType=%q; want %q", c.req.ContentType, c.want.contentType)
			}
		})
	}
}

func Test_HTTPRequest_FinalizeBody_multipart(t *testing.T) {
	req := HTTPRequest{
		Files: []FilePart{
			{FieldName: "file", FileName: "shot.png", Content: []byte("png-bytes")},
		},
		FormFields: map[string]string{"folder": "projects"},
		BodyType:   "multipart/form-data",
	}

	if err := req.FinalizeBody(); err != nil {
		t.Fatalf("FinalizeBody error: %v", err)
	}

	mediaType, params, err := mime.ParseMediaType(req.ContentType)
	if err != nil {
		t.Fatalf("parse content type %q: %v", req.ContentType, err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type=%q; want multipart/form-data", mediaType)
	}

	mr := multipart.NewReader(bytes.NewReader(req.BodyBytes), params["boundary"])
	got := map[string]string{}
	var gotFilename string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart: %v", err)
		}
		content, _ := io.ReadAll(part)
		got[part.FormName()] = string(content)
		if part.FileName() != "" {
			gotFilename = part.FileName()
		}
	}

	if got["folder"] != "projects" {
		t.Fatalf("folder field=%q; want projects", got["folder"])
	}
	if got["file"] != "png-bytes" {
		t.Fatalf("file content=%q; want png-bytes", got["file"])
	}
	if gotFilename != "shot.png" {
		t.Fatalf("filename=%q; want shot.png", gotFilename)
	}

	// Finalizing again must not rebuild the payload; replays depend on the
	// exact same bytes going out.
	before := append([]byte(nil), req.BodyBytes...)
	if err := req.FinalizeBody(); err != nil {
		t.Fatalf("second FinalizeBody error: %v", err)
	}
	if !bytes.Equal(before, req.BodyBytes) {
		t.Fatal("multipart body changed on re-finalize")
	}
}

func Test_HTTPRequest_FinalizeBody_multipartDefaultsFieldName(t *testing.T) {
	req := HTTPRequest{
		Files: []FilePart{{FileName: "a.txt", Content: []byte("x")}},
	}
	if err := req.FinalizeBody(); err != nil {
		t.Fatalf("FinalizeBody error: %v", err)
	}

	_, params, err := mime.ParseMediaType(req.ContentType)
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	mr := multipart.NewReader(bytes.NewReader(req.BodyBytes), params["boundary"])
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("NextPart: %v", err)
	}
	if part.FormName() != "file" {
		t.Fatalf("field name=%q; want file", part.FormName())
	}
}
