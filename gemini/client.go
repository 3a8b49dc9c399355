package gemini

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/fwojciec/aethel"
	"google.golang.org/genai"
)

// Interface compliance checks.
var (
	_ aethel.Generator   = (*Client)(nil)
	_ aethel.ChatStarter = (*Client)(nil)
)

// modelsAPI is the subset of genai.Models the client calls.
type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// chatSession is the subset of genai.Chat the client calls.
type chatSession interface {
	SendMessageStream(ctx context.Context, parts ...genai.Part) iter.Seq2[*genai.GenerateContentResponse, error]
}

// chatFactory opens a remote chat seeded with history.
type chatFactory func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (chatSession, error)

// Client talks to the Gemini API.
type Client struct {
	models   modelsAPI
	newChat  chatFactory
	logger   *slog.Logger
	reporter aethel.Reporter
}

// Option configures a [Client].
type Option func(*Client)

// WithLogger sets the logger. Default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithReporter sets where call failures are reported. Default is
// [aethel.NopReporter].
func WithReporter(r aethel.Reporter) Option {
	return func(c *Client) { c.reporter = r }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	newChat := func(ctx context.Context, model string, config *genai.GenerateContentConfig, history []*genai.Content) (chatSession, error) {
		chat, err := gc.Chats.Create(ctx, model, config, history)
		if err != nil {
			return nil, err
		}
		return chat, nil
	}
	return newClient(gc.Models, newChat, opts...), nil
}

func newClient(models modelsAPI, newChat chatFactory, opts ...Option) *Client {
	c := &Client{
		models:   models,
		newChat:  newChat,
		logger:   slog.New(slog.DiscardHandler),
		reporter: aethel.NopReporter{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// GenerateText issues one generate-content call with the persona
// instruction and the parameters mapped from s.
func (c *Client) GenerateText(ctx context.Context, prompt, model, instruction string, s aethel.Settings) aethel.TextResult {
	config := BuildConfig(aethel.ApplyAdherence(instruction, s.Adherence), s.Params())
	resp, err := c.models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return aethel.TextResult{Err: c.fail(ctx, "text", model, err)}
	}
	return aethel.TextResult{Text: ResponseText(resp)}
}

// GenerateImages requests a fixed batch of square PNG images in the
// suite's visual style. Settings do not affect image requests.
func (c *Client) GenerateImages(ctx context.Context, prompt string, _ aethel.Settings) aethel.ImageResult {
	resp, err := c.models.GenerateImages(ctx, ImageModel, prompt+ImageStyleSuffix, &genai.GenerateImagesConfig{
		NumberOfImages: ImageCount,
		AspectRatio:    ImageAspectRatio,
		OutputMIMEType: ImageMIMEType,
	})
	if err != nil {
		return aethel.ImageResult{Err: c.fail(ctx, "images", ImageModel, err)}
	}
	var images []aethel.Image
	for _, gi := range resp.GeneratedImages {
		if gi == nil || gi.Image == nil || len(gi.Image.ImageBytes) == 0 {
			continue
		}
		mime := gi.Image.MIMEType
		if mime == "" {
			mime = ImageMIMEType
		}
		images = append(images, aethel.Image{Data: gi.Image.ImageBytes, MIMEType: mime})
	}
	return aethel.ImageResult{Images: images}
}

// GenerateAudio first asks the description model to describe the
// soundscape, then synthesizes that description with the speech model.
// The speech call is skipped when the description is empty.
func (c *Client) GenerateAudio(ctx context.Context, prompt, instruction string, s aethel.Settings) aethel.AudioResult {
	config := BuildConfig(aethel.ApplyAdherence(instruction, s.Adherence), s.Params())
	resp, err := c.models.GenerateContent(ctx, DescriptionModel, genai.Text(DescriptionPrompt(prompt)), config)
	if err != nil {
		return aethel.AudioResult{Err: c.fail(ctx, "audio_description", DescriptionModel, err)}
	}
	description := ResponseText(resp)
	if description == "" {
		return aethel.AudioResult{Err: c.fail(ctx, "audio_description", DescriptionModel, aethel.ErrNoDescription)}
	}

	resp, err = c.models.GenerateContent(ctx, SpeechModel, genai.Text(description), SpeechConfig())
	if err != nil {
		return aethel.AudioResult{Err: c.fail(ctx, "audio_speech", SpeechModel, err)}
	}
	data := InlineAudio(resp)
	if len(data) == 0 {
		return aethel.AudioResult{Err: c.fail(ctx, "audio_speech", SpeechModel, aethel.ErrNoAudioData)}
	}
	return aethel.AudioResult{Audio: data, Description: description}
}

// StartChat opens a remote chat configured from cfg. cfg.Instruction is
// used as given.
func (c *Client) StartChat(ctx context.Context, cfg aethel.ChatConfig) (aethel.Conversation, error) {
	chat, err := c.newChat(ctx, cfg.Model, BuildConfig(cfg.Instruction, cfg.Params), ConvertHistory(cfg.History))
	if err != nil {
		return nil, c.fail(ctx, "chat", cfg.Model, err)
	}
	c.logger.Debug("chat opened", "model", cfg.Model, "history", len(cfg.History))
	return &conversation{chat: chat, model: cfg.Model, client: c}, nil
}

// fail wraps err, logs it and reports it. Cancellations are neither
// logged as errors nor reported.
func (c *Client) fail(ctx context.Context, op, model string, err error) error {
	err = fmt.Errorf("gemini: %w", err)
	if errors.Is(err, context.Canceled) {
		c.logger.Info("request cancelled", "op", op, "model", model)
		return err
	}
	c.logger.Error("request failed", "op", op, "model", model, "error", err)
	c.reporter.Report(ctx, err, map[string]string{"op": op, "model": model})
	return err
}

// BuildConfig converts an instruction and mapped parameters into a
// generate-content config. Exported for testing.
func BuildConfig(instruction string, p aethel.Params) *genai.GenerateContentConfig {
	temp := float32(p.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: int32(p.MaxOutputTokens),
	}
	if instruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		}
	}
	return config
}

// SpeechConfig returns the config for the speech synthesis call.
// Exported for testing.
func SpeechConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: SpeechVoice},
			},
		},
	}
}

// DescriptionPrompt builds the first-stage audio prompt.
func DescriptionPrompt(prompt string) string {
	return `Describe the ambient audio track for this prompt: "` + prompt + `"`
}

// ConvertHistory converts chat messages to genai Contents.
// Exported for testing.
func ConvertHistory(msgs []aethel.ChatMessage) []*genai.Content {
	var result []*genai.Content
	for _, m := range msgs {
		role := genai.RoleUser
		if m.Role == aethel.RoleModel {
			role = genai.RoleModel
		}
		result = append(result, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return result
}

// ResponseText concatenates the non-thought text parts of the first
// candidate. It is nil-safe and, unlike the SDK helper, never logs.
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range cand.Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}

// InlineAudio returns the inline data of the first part of the first
// candidate, or nil.
func InlineAudio(resp *genai.GenerateContentResponse) []byte {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 {
		return nil
	}
	p := cand.Content.Parts[0]
	if p == nil || p.InlineData == nil {
		return nil
	}
	return p.InlineData.Data
}
