package questions

import (
	"context"

	"go.uber.org/zap"

	"github.com/spigell/talentscout/internal/ai"
	"github.com/spigell/talentscout/internal/logger"
)

// Source tells where a block of questions came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Block is the outcome of question generation for one technology.
type Block struct {
	Technology string
	Source     Source
	Questions  []Question
	Err        error
}

// Pipeline generates questions technology by technology. A failure for one
// technology never affects the others.
type Pipeline struct {
	caller ai.Caller
	logger *zap.Logger
}

// NewPipeline creates a Pipeline that talks to the model through caller.
func NewPipeline(caller ai.Caller, log *zap.Logger) *Pipeline {
	return &Pipeline{
		caller: caller,
		logger: logger.WithFields(log),
	}
}

// GenerateAll returns the questions for every technology in order, with each
// technology's questions kept together.
func (p *Pipeline) GenerateAll(ctx context.Context, technologies []string, years float64, perTech int) []Question {
	blocks := p.GenerateBlocks(ctx, technologies, years, perTech)

	var out []Question
	for _, b := range blocks {
		out = append(out, b.Questions...)
	}
	return out
}

// GenerateBlocks is GenerateAll with the per-technology breakdown kept.
func (p *Pipeline) GenerateBlocks(ctx context.Context, technologies []string, years float64, perTech int) []Block {
	blocks := make([]Block, 0, len(technologies))
	for _, tech := range technologies {
		blocks = append(blocks, p.generate(ctx, tech, years, perTech))
	}

	p.logger.Info("question generation completed",
		zap.Int("technologies", len(technologies)),
		zap.Int("fallbacks", countFallbacks(blocks)),
	)

	return blocks
}

func (p *Pipeline) generate(ctx context.Context, tech string, years float64, perTech int) Block {
	log := p.logger.With(zap.String(logger.FieldTechnology, tech))

	raw, err := p.caller.Call(ctx, BuildPrompt(tech, years, perTech))
	if err != nil {
		log.Error("question generation failed, using fallback questions",
			zap.String("ecosystem", Ecosystem(tech)),
			zap.Error(err),
		)
		return Block{
			Technology: tech,
			Source:     SourceFallback,
			Questions:  Fallback(tech, perTech, years),
			Err:        err,
		}
	}

	parsed := Parse(raw)
	for i := range parsed {
		// Every question belongs to the technology that was asked about,
		// whatever heading the model chose to put above it.
		if parsed[i].Technology != tech {
			if parsed[i].Technology != "" {
				log.Debug("replacing model heading with requested technology",
					zap.String("heading", parsed[i].Technology),
				)
			}
			parsed[i].Technology = tech
		}
	}

	if len(parsed) == 0 {
		log.Warn("no questions parsed from model output, using fallback questions",
			zap.String("ecosystem", Ecosystem(tech)),
			zap.Int("response_length", len(raw)),
		)
		return Block{
			Technology: tech,
			Source:     SourceFallback,
			Questions:  Fallback(tech, perTech, years),
		}
	}

	log.Debug("questions parsed", zap.Int("count", len(parsed)))

	return Block{Technology: tech, Source: SourceModel, Questions: parsed}
}

func countFallbacks(blocks []Block) int {
	n := 0
	for _, b := range blocks {
		if b.Source == SourceFallback {
			n++
		}
	}
	return n
}
