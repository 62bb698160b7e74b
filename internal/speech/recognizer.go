// Package speech implements voice.Recognizer on Google Cloud Speech
// streaming recognition, reading raw PCM from a capture command.
package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	speechapi "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/adaptive-learning/studybuddy/internal/config"
	"github.com/adaptive-learning/studybuddy/internal/voice"
)

// chunkSize is 100ms of 16 kHz 16-bit mono audio.
const chunkSize = 3200

var errNoCapture = errors.New("no audio capture command available")

// recognizeStream is the part of speechpb.Speech_StreamingRecognizeClient
// the recognizer uses.
type recognizeStream interface {
	Send(*speechpb.StreamingRecognizeRequest) error
	Recv() (*speechpb.StreamingRecognizeResponse, error)
	CloseSend() error
}

type (
	openFunc    func(ctx context.Context) (recognizeStream, error)
	captureFunc func(ctx context.Context) (io.ReadCloser, error)
)

// Recognizer starts one StreamingRecognize call per session.
type Recognizer struct {
	cfg     config.SpeechConfig
	client  *speechapi.Client
	open    openFunc
	capture captureFunc
	log     *zap.SugaredLogger
}

// New dials the Speech API. Credentials come from cfg.CredentialsFile or
// the application default credentials.
func New(ctx context.Context, cfg config.SpeechConfig, log *zap.SugaredLogger) (*Recognizer, error) {
	client, err := speechapi.NewClient(ctx, clientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}
	r := newRecognizer(cfg, func(ctx context.Context) (recognizeStream, error) {
		return client.StreamingRecognize(ctx)
	}, commandCapture(cfg.CaptureCommand), log)
	r.client = client
	return r, nil
}

func newRecognizer(cfg config.SpeechConfig, open openFunc, capture captureFunc, log *zap.SugaredLogger) *Recognizer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Recognizer{cfg: cfg, open: open, capture: capture, log: log}
}

func clientOptions(cfg config.SpeechConfig) []option.ClientOption {
	var opts []option.ClientOption
	if f := strings.TrimSpace(cfg.CredentialsFile); f != "" {
		opts = append(opts, option.WithCredentialsFile(f))
	}
	return opts
}

// Close releases the underlying gRPC connection.
func (r *Recognizer) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

// streamingConfig asks for final results only, continuously.
func streamingConfig(cfg config.SpeechConfig) *speechpb.StreamingRecognitionConfig {
	lang := cfg.Language
	if lang == "" {
		lang = "en-US"
	}
	rate := cfg.SampleRateHertz
	if rate <= 0 {
		rate = 16000
	}
	return &speechpb.StreamingRecognitionConfig{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   int32(rate),
			AudioChannelCount: 1,
			LanguageCode:      lang,
		},
		SingleUtterance: false,
		InterimResults:  false,
	}
}

// Start opens the audio source and the recognition stream.
func (r *Recognizer) Start(ctx context.Context) (voice.CommandStream, error) {
	ctx, cancel := context.WithCancel(ctx)
	s := &stream{events: make(chan voice.Event, 8), cancel: cancel}

	audio, err := r.capture(ctx)
	if errors.Is(err, errNoCapture) {
		r.log.Warnw("speech capture unavailable", "command", r.cfg.CaptureCommand)
		go s.fail(ctx, voice.ErrServiceNotAllowed)
		return s, nil
	}
	if err != nil {
		cancel()
		return nil, fmt.Errorf("starting audio capture: %w", err)
	}

	rs, err := r.open(ctx)
	if err != nil {
		audio.Close()
		cancel()
		return nil, fmt.Errorf("opening recognition stream: %w", err)
	}
	err = rs.Send(&speechpb.StreamingRecognizeRequest{
		StreamingRequest: &speechpb.StreamingRecognizeRequest_StreamingConfig{
			StreamingConfig: streamingConfig(r.cfg),
		},
	})
	if err != nil {
		audio.Close()
		cancel()
		return nil, fmt.Errorf("sending recognition config: %w", err)
	}

	go r.sendAudio(rs, audio)
	go r.receive(ctx, rs, s, audio)
	return s, nil
}

func (r *Recognizer) sendAudio(rs recognizeStream, audio io.Reader) {
	buf := make([]byte, chunkSize)
	for {
		n, err := audio.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			if sendErr := rs.Send(&speechpb.StreamingRecognizeRequest{
				StreamingRequest: &speechpb.StreamingRecognizeRequest_AudioContent{AudioContent: chunk},
			}); sendErr != nil {
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				r.log.Debugw("audio capture ended", "error", err)
			}
			_ = rs.CloseSend()
			return
		}
	}
}

func (r *Recognizer) receive(ctx context.Context, rs recognizeStream, s *stream, audio io.Closer) {
	defer func() {
		audio.Close()
		s.cancel()
		close(s.events)
	}()
	for {
		resp, err := rs.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			code := status.Code(err)
			r.log.Infow("speech stream error", "code", code.String(), "error", err)
			if ec, ok := errorCode(code); ok {
				s.emit(ctx, voice.Event{Err: ec})
			}
			return
		}
		if e := resp.GetError(); e != nil && e.GetCode() != 0 {
			if ec, ok := errorCode(codes.Code(e.GetCode())); ok {
				s.emit(ctx, voice.Event{Err: ec})
			}
			return
		}
		for _, res := range resp.GetResults() {
			if !res.GetIsFinal() || len(res.GetAlternatives()) == 0 {
				continue
			}
			s.emit(ctx, voice.Event{Transcript: res.GetAlternatives()[0].GetTranscript(), Final: true})
		}
	}
}

// errorCode maps a gRPC status to a recognizer error. ok is false when
// the stream should simply end, as it does at the API's stream duration
// limit.
func errorCode(c codes.Code) (voice.ErrorCode, bool) {
	switch c {
	case codes.OK, codes.OutOfRange:
		return "", false
	case codes.Canceled:
		return voice.ErrAborted, true
	case codes.Unavailable, codes.DeadlineExceeded:
		return voice.ErrNetwork, true
	case codes.PermissionDenied, codes.Unauthenticated:
		return voice.ErrNotAllowed, true
	default:
		return voice.ErrUnknown, true
	}
}

type stream struct {
	events chan voice.Event
	cancel context.CancelFunc
	once   sync.Once
}

func (s *stream) Events() <-chan voice.Event { return s.events }

// Stop cancels the call; the receive loop closes Events.
func (s *stream) Stop() {
	s.once.Do(s.cancel)
}

func (s *stream) emit(ctx context.Context, ev voice.Event) {
	select {
	case s.events <- ev:
	case <-ctx.Done():
	}
}

func (s *stream) fail(ctx context.Context, code voice.ErrorCode) {
	s.emit(ctx, voice.Event{Err: code})
	s.cancel()
	close(s.events)
}
