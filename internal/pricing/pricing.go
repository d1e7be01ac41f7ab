// Package pricing turns token counts into per-model cost estimates.
package pricing

import (
	"errors"
	"fmt"

	"github.com/spboyer/toklens/internal/tokens"
)

// Model holds the USD price per 1,000 input and output tokens.
type Model struct {
	Name        string  `json:"name" yaml:"name" mapstructure:"name"`
	InputPer1K  float64 `json:"inputPer1K" yaml:"input_per_1k" mapstructure:"input_per_1k"`
	OutputPer1K float64 `json:"outputPer1K" yaml:"output_per_1k" mapstructure:"output_per_1k"`
}

// DefaultModels is used when no pricing is configured.
var DefaultModels = []Model{
	{Name: "GPT-4", InputPer1K: 0.03, OutputPer1K: 0.06},
	{Name: "GPT-3.5 Turbo", InputPer1K: 0.0015, OutputPer1K: 0.002},
	{Name: "Claude 3 Opus", InputPer1K: 0.015, OutputPer1K: 0.075},
	{Name: "Claude 3 Sonnet", InputPer1K: 0.003, OutputPer1K: 0.015},
}

// Estimate is the cost of one request against a model.
type Estimate struct {
	Model        string  `json:"model"`
	InputTokens  int     `json:"inputTokens"`
	OutputTokens int     `json:"outputTokens"`
	InputCost    float64 `json:"inputCost"`
	OutputCost   float64 `json:"outputCost"`
	TotalCost    float64 `json:"totalCost"`
}

// Cost returns the input and output cost of a request.
func (m Model) Cost(inputTokens, outputTokens int) Estimate {
	in := float64(inputTokens) / 1000 * m.InputPer1K
	out := float64(outputTokens) / 1000 * m.OutputPer1K
	return Estimate{
		Model:        m.Name,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		InputCost:    in,
		OutputCost:   out,
		TotalCost:    in + out,
	}
}

// Validate checks that the model has a name and non-negative prices.
func (m Model) Validate() error {
	if m.Name == "" {
		return errors.New("model name is required")
	}
	if m.InputPer1K < 0 || m.OutputPer1K < 0 {
		return fmt.Errorf("model %q: prices must not be negative", m.Name)
	}
	return nil
}

// Estimator prices text using a token counter.
type Estimator struct {
	counter tokens.Counter
	models  []Model
}

// NewEstimator creates an Estimator. An empty models list selects
// DefaultModels.
func NewEstimator(counter tokens.Counter, models []Model) (*Estimator, error) {
	if counter == nil {
		return nil, errors.New("pricing: counter is required")
	}
	if len(models) == 0 {
		models = DefaultModels
	}
	for _, m := range models {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("pricing: %w", err)
		}
	}
	return &Estimator{counter: counter, models: models}, nil
}

// Estimate counts the tokens in text once and prices them for every model.
// outputTokens is the expected length of the response.
func (e *Estimator) Estimate(text string, outputTokens int) []Estimate {
	return e.ForTokens(e.counter.Count(text), outputTokens)
}

// ForTokens prices an already known input token count.
func (e *Estimator) ForTokens(inputTokens, outputTokens int) []Estimate {
	out := make([]Estimate, len(e.models))
	for i, m := range e.models {
		out[i] = m.Cost(inputTokens, outputTokens)
	}
	return out
}

// Models returns the models the Estimator prices against.
func (e *Estimator) Models() []Model {
	return e.models
}
