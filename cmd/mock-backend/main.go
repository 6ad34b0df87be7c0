// Command mock-backend runs deterministic fake Gemini, WolframAlpha,
// Hugging Face and OpenAI-compatible endpoints on one port for local
// development. Point every
// provider's base_url at it. Answers are computed for simple "a op b"
// arithmetic and echoed otherwise.
//
// Configuration:
//
//	MOCK_PORT - Listen port (default: 9090)
//	MOCK_FAIL - Comma-separated providers that answer 503 (gemini, wolfram, huggingface, openai)
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"strconv"
	"strings"
	"syscall"
	"time"
)

func main() {
	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "9090"
	}

	srv := &http.Server{Addr: ":" + port, Handler: newMux(parseFailing(os.Getenv("MOCK_FAIL")))}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("mock backend starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("mock backend failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("mock backend shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

func parseFailing(s string) map[string]bool {
	failing := make(map[string]bool)
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(strings.ToLower(name)); name != "" {
			failing[name] = true
		}
	}
	return failing
}

func newMux(failing map[string]bool) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /v1beta/models/{model}", failable(failing["gemini"], http.HandlerFunc(handleGemini)))
	mux.Handle("GET /v1/result", failable(failing["wolfram"], http.HandlerFunc(handleWolfram)))
	mux.Handle("POST /models/{model...}", failable(failing["huggingface"], http.HandlerFunc(handleHuggingFace)))
	mux.Handle("POST /v1/chat/completions", failable(failing["openai"], http.HandlerFunc(handleChatCompletions)))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})
	return mux
}

func failable(fail bool, next http.Handler) http.Handler {
	if !fail {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable (MOCK_FAIL)", http.StatusServiceUnavailable)
	})
}

// --- Gemini generateContent ---

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

func handleGemini(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.PathValue("model"), ":generateContent") {
		http.NotFound(w, r)
		return
	}
	if r.Header.Get("x-goog-api-key") == "" {
		writeJSON(w, http.StatusForbidden, map[string]any{
			"error": map[string]any{"code": 403, "message": "API key not valid", "status": "PERMISSION_DENIED"},
		})
		return
	}

	var req geminiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Contents) == 0 || len(req.Contents[0].Parts) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{"code": 400, "message": "invalid request", "status": "INVALID_ARGUMENT"},
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"candidates": []map[string]any{{
			"content": geminiContent{
				Role:  "model",
				Parts: []geminiPart{{Text: "Step 1: evaluate.\nAnswer: " + answer(req.Contents[0].Parts[0].Text)}},
			},
			"finishReason": "STOP",
		}},
	})
}

// --- WolframAlpha short answers ---

func handleWolfram(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("appid") == "" {
		http.Error(w, "Error 1: Invalid appid", http.StatusForbidden)
		return
	}
	input := q.Get("i")
	if strings.TrimSpace(input) == "" {
		http.Error(w, "No input", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, answer(input))
}

// --- Hugging Face text generation ---

type hfRequest struct {
	Inputs string `json:"inputs"`
}

func handleHuggingFace(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authorization header is correct, but the token seems invalid"})
		return
	}

	var req hfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	// The hosted API echoes the prompt ahead of the generation.
	writeJSON(w, http.StatusOK, []map[string]string{{
		"generated_text": req.Inputs + "The answer is " + answer(req.Inputs) + ".",
	}})
}

// --- OpenAI-compatible Chat Completions ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

func handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{"message": "invalid request", "type": "invalid_request_error"},
		})
		return
	}

	var question string
	for _, m := range req.Messages {
		if m.Role == "user" {
			question = m.Content
		}
	}

	model := req.Model
	if model == "" {
		model = "mock-model"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":     "chatcmpl-mock",
		"object": "chat.completion",
		"model":  model,
		"choices": []map[string]any{{
			"index":         0,
			"message":       chatMessage{Role: "assistant", Content: "The result is " + answer(question) + "."},
			"finish_reason": "stop",
		}},
	})
}

// --- Answers ---

var binaryExpr = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*([-+*/x×])\s*(-?\d+(?:\.\d+)?)`)

// answer evaluates the first "a op b" expression in text, or echoes the
// text when there is none.
func answer(text string) string {
	m := binaryExpr.FindStringSubmatch(text)
	if m == nil {
		return "mock answer for: " + strings.TrimSpace(text)
	}
	a, _ := strconv.ParseFloat(m[1], 64)
	b, _ := strconv.ParseFloat(m[3], 64)

	var v float64
	switch m[2] {
	case "+":
		v = a + b
	case "-":
		v = a - b
	case "*", "x", "×":
		v = a * b
	case "/":
		if b == 0 {
			return "undefined"
		}
		v = a / b
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
