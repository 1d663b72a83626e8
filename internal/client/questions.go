package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/DanRulev/quizbot.git/internal/models"
)

const maxDocumentSize = 4 << 20

// QuestionsAPI reads the question document from an http(s) URL or a local file.
type QuestionsAPI struct {
	source string
	client *http.Client
}

func NewQuestionsAPI(source string, timeout time.Duration) *QuestionsAPI {
	return &QuestionsAPI{
		source: source,
		client: &http.Client{Timeout: timeout},
	}
}

func (q *QuestionsAPI) FetchQuestions(ctx context.Context) ([]models.Question, error) {
	var (
		data []byte
		err  error
	)

	if isURL(q.source) {
		data, err = q.download(ctx)
	} else {
		data, err = os.ReadFile(q.source)
	}
	if err != nil {
		return nil, err
	}

	var questions []models.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions from %s: %w", q.source, err)
	}

	return questions, nil
}

func (q *QuestionsAPI) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := q.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
