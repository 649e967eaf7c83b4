package execsrvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/codeclash/backend/logger"
	"github.com/codeclash/backend/planglist"
)

// PistonClient talks to a Piston-compatible remote execution API. The remote
// engine is untrusted and may hang, so every call runs under the configured
// timeout.
type PistonClient struct {
	baseUrl    string
	httpClient *http.Client
}

func NewPistonClient(baseUrl string, timeout time.Duration) *PistonClient {
	return &PistonClient{
		baseUrl:    baseUrl,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type pistonFile struct {
	Content string `json:"content"`
}

type pistonExecuteRequest struct {
	Language string       `json:"language"`
	Version  string       `json:"version"`
	Files    []pistonFile `json:"files"`
	Stdin    string       `json:"stdin"`
}

type pistonRun struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Code   int    `json:"code"`
}

type pistonExecuteResponse struct {
	Run pistonRun `json:"run"`
}

// Execute issues exactly one remote call. No batching, no retry.
func (c *PistonClient) Execute(ctx context.Context, code string, lang planglist.ProgrammingLang, stdin string) (*ExecResult, error) {
	reqBody := pistonExecuteRequest{
		Language: lang.ID,
		Version:  lang.Version,
		Files:    []pistonFile{{Content: code}},
		Stdin:    stdin,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal execute request: %w", err)
	}

	url := c.baseUrl + "/execute"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create execute request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("execute request returned status %d", resp.StatusCode)
	}

	var decoded pistonExecuteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode execute response: %w", err)
	}

	return &ExecResult{
		Stdout:   decoded.Run.Stdout,
		Stderr:   decoded.Run.Stderr,
		ExitCode: decoded.Run.Code,
	}, nil
}

// RunTestCase normalizes the input, executes the code remotely and
// classifies the outcome. Transport-level failures are classified as a fail
// with a fixed message; they are not retried and are indistinguishable
// downstream from a normal fail except for the message.
func (c *PistonClient) RunTestCase(ctx context.Context, code string, lang planglist.ProgrammingLang, input, expected string) TestRunResult {
	stdin := NormalizeStdin(lang, input)

	res, err := c.Execute(ctx, code, lang, stdin)
	if err != nil {
		logger.FromContext(ctx).Warn("remote execution failed", "error", err, "lang", lang.ID)
		msg := ErrMsgExecutionFailed
		return TestRunResult{
			Input:    input,
			Expected: expected,
			ErrMsg:   &msg,
			Passed:   false,
		}
	}

	passed, errMsg := Classify(expected, *res)
	return TestRunResult{
		Input:    input,
		Expected: expected,
		Actual:   res.Stdout,
		ErrMsg:   errMsg,
		Passed:   passed,
	}
}
