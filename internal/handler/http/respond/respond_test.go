package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{
			name:         "envelope",
			code:         http.StatusOK,
			data:         map[string]any{"topics": []string{}},
			expectedBody: `{"topics":[]}`,
		},
		{
			name:         "struct",
			code:         http.StatusCreated,
			data:         MessageBody{Msg: "created"},
			expectedBody: `{"msg":"created"}`,
		},
		{
			name:         "nil writes no body",
			code:         http.StatusOK,
			data:         nil,
			expectedBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			if w.Code != tt.code {
				t.Errorf("Code = %v, want %v", w.Code, tt.code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %v", ct)
			}
			if body := strings.TrimSpace(w.Body.String()); body != tt.expectedBody {
				t.Errorf("Body = %q, want %q", body, tt.expectedBody)
			}
		})
	}
}

func TestJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, make(chan int))

	if w.Code != http.StatusOK {
		t.Errorf("Code = %v, want %v", w.Code, http.StatusOK)
	}
}

func TestMessage(t *testing.T) {
	w := httptest.NewRecorder()
	Message(w, http.StatusNotFound, "article not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("Code = %v", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != `{"msg":"article not found"}` {
		t.Errorf("Body = %s", body)
	}
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	NoContent(w)

	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Errorf("NoContent wrote %d %q", w.Code, w.Body.String())
	}
}

func TestAppError(t *testing.T) {
	inner := errors.New("pool exhausted")
	err := NewAppError(http.StatusServiceUnavailable, "try again later", inner)

	if err.Error() != "pool exhausted" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("AppError should unwrap to its cause")
	}

	bare := NewAppError(http.StatusTeapot, "short and stout", nil)
	if bare.Error() != "short and stout" {
		t.Errorf("Error() without cause = %q", bare.Error())
	}
}
