package speech

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rpcstatus "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/adaptive-learning/studybuddy/internal/config"
	"github.com/adaptive-learning/studybuddy/internal/voice"
)

type fakeRecognizeStream struct {
	mu        sync.Mutex
	sent      []*speechpb.StreamingRecognizeRequest
	closed    bool
	responses chan *speechpb.StreamingRecognizeResponse
	errs      chan error
}

func newFakeStream() *fakeRecognizeStream {
	return &fakeRecognizeStream{
		responses: make(chan *speechpb.StreamingRecognizeResponse, 4),
		errs:      make(chan error, 1),
	}
}

func (f *fakeRecognizeStream) Send(req *speechpb.StreamingRecognizeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, req)
	return nil
}

func (f *fakeRecognizeStream) Recv() (*speechpb.StreamingRecognizeResponse, error) {
	select {
	case r := <-f.responses:
		return r, nil
	case err := <-f.errs:
		return nil, err
	}
}

func (f *fakeRecognizeStream) CloseSend() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeRecognizeStream) requests() []*speechpb.StreamingRecognizeRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*speechpb.StreamingRecognizeRequest(nil), f.sent...)
}

func final(text string) *speechpb.StreamingRecognizeResponse {
	return &speechpb.StreamingRecognizeResponse{
		Results: []*speechpb.StreamingRecognitionResult{{
			IsFinal:      true,
			Alternatives: []*speechpb.SpeechRecognitionAlternative{{Transcript: text}},
		}},
	}
}

func pcm(n int) captureFunc {
	return func(context.Context) (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(make([]byte, n))), nil
	}
}

func testRecognizer(fs *fakeRecognizeStream, capture captureFunc) *Recognizer {
	cfg := config.Default().Speech
	return newRecognizer(cfg, func(context.Context) (recognizeStream, error) { return fs, nil }, capture, nil)
}

func collect(t *testing.T, s voice.CommandStream) []voice.Event {
	t.Helper()
	var got []voice.Event
	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-s.Events():
			if !ok {
				return got
			}
			got = append(got, ev)
		case <-timeout:
			t.Fatal("stream did not close")
		}
	}
}

func TestStreamingConfig(t *testing.T) {
	sc := streamingConfig(config.SpeechConfig{})
	assert.Equal(t, "en-US", sc.GetConfig().GetLanguageCode())
	assert.Equal(t, int32(16000), sc.GetConfig().GetSampleRateHertz())
	assert.Equal(t, speechpb.RecognitionConfig_LINEAR16, sc.GetConfig().GetEncoding())
	assert.Equal(t, int32(1), sc.GetConfig().GetAudioChannelCount())
	assert.False(t, sc.GetInterimResults())
	assert.False(t, sc.GetSingleUtterance())

	sc = streamingConfig(config.SpeechConfig{Language: "en-GB", SampleRateHertz: 8000})
	assert.Equal(t, "en-GB", sc.GetConfig().GetLanguageCode())
	assert.Equal(t, int32(8000), sc.GetConfig().GetSampleRateHertz())
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		code   codes.Code
		want   voice.ErrorCode
		wantOK bool
	}{
		{codes.OK, "", false},
		{codes.OutOfRange, "", false},
		{codes.Canceled, voice.ErrAborted, true},
		{codes.Unavailable, voice.ErrNetwork, true},
		{codes.DeadlineExceeded, voice.ErrNetwork, true},
		{codes.PermissionDenied, voice.ErrNotAllowed, true},
		{codes.Unauthenticated, voice.ErrNotAllowed, true},
		{codes.Internal, voice.ErrUnknown, true},
		{codes.InvalidArgument, voice.ErrUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			got, ok := errorCode(tt.code)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("errorCode(%v) = %q, %v; want %q, %v", tt.code, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClientOptions(t *testing.T) {
	assert.Empty(t, clientOptions(config.SpeechConfig{}))
	assert.Len(t, clientOptions(config.SpeechConfig{CredentialsFile: "/tmp/key.json"}), 1)
}

func TestStart_SendsConfigThenAudio(t *testing.T) {
	fs := newFakeStream()
	r := testRecognizer(fs, pcm(chunkSize+10))

	s, err := r.Start(context.Background())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		return fs.closed
	}, time.Second, 5*time.Millisecond)

	reqs := fs.requests()
	require.Len(t, reqs, 3)
	require.NotNil(t, reqs[0].GetStreamingConfig())
	assert.Len(t, reqs[1].GetAudioContent(), chunkSize)
	assert.Len(t, reqs[2].GetAudioContent(), 10)

	fs.errs <- io.EOF
	assert.Empty(t, collect(t, s))
}

func TestStart_DeliversFinalTranscripts(t *testing.T) {
	fs := newFakeStream()
	r := testRecognizer(fs, pcm(0))

	s, err := r.Start(context.Background())
	require.NoError(t, err)

	fs.responses <- &speechpb.StreamingRecognizeResponse{
		Results: []*speechpb.StreamingRecognitionResult{{
			IsFinal:      false,
			Alternatives: []*speechpb.SpeechRecognitionAlternative{{Transcript: "go to"}},
		}},
	}
	fs.responses <- final("go to insights")
	fs.errs <- io.EOF

	got := collect(t, s)
	require.Len(t, got, 1)
	assert.Equal(t, voice.Event{Transcript: "go to insights", Final: true}, got[0])
}

func TestStart_MapsStreamErrors(t *testing.T) {
	fs := newFakeStream()
	r := testRecognizer(fs, pcm(0))

	s, err := r.Start(context.Background())
	require.NoError(t, err)
	fs.errs <- status.Error(codes.Unavailable, "connection reset")

	got := collect(t, s)
	require.Len(t, got, 1)
	assert.Equal(t, voice.ErrNetwork, got[0].Err)
}

func TestStart_ResponseErrorStatus(t *testing.T) {
	fs := newFakeStream()
	r := testRecognizer(fs, pcm(0))

	s, err := r.Start(context.Background())
	require.NoError(t, err)
	fs.responses <- &speechpb.StreamingRecognizeResponse{
		Error: &rpcstatus.Status{Code: int32(codes.PermissionDenied), Message: "denied"},
	}

	got := collect(t, s)
	require.Len(t, got, 1)
	assert.Equal(t, voice.ErrNotAllowed, got[0].Err)
}

func TestStart_DurationLimitEndsQuietly(t *testing.T) {
	fs := newFakeStream()
	r := testRecognizer(fs, pcm(0))

	s, err := r.Start(context.Background())
	require.NoError(t, err)
	fs.errs <- status.Error(codes.OutOfRange, "exceeded maximum allowed stream duration")

	assert.Empty(t, collect(t, s))
}

func TestStart_NoCaptureCommand(t *testing.T) {
	opened := false
	cfg := config.SpeechConfig{}
	r := newRecognizer(cfg, func(context.Context) (recognizeStream, error) {
		opened = true
		return newFakeStream(), nil
	}, commandCapture(""), nil)

	s, err := r.Start(context.Background())
	require.NoError(t, err)

	got := collect(t, s)
	require.Len(t, got, 1)
	assert.Equal(t, voice.ErrServiceNotAllowed, got[0].Err)
	assert.False(t, opened)
}

func TestStart_OpenFailure(t *testing.T) {
	r := newRecognizer(config.SpeechConfig{}, func(context.Context) (recognizeStream, error) {
		return nil, errors.New("dial failed")
	}, pcm(0), nil)

	_, err := r.Start(context.Background())
	require.Error(t, err)
}

func TestStop_ClosesEventsSilently(t *testing.T) {
	fs := newFakeStream()
	r := testRecognizer(fs, pcm(0))

	s, err := r.Start(context.Background())
	require.NoError(t, err)
	s.Stop()
	fs.errs <- status.Error(codes.Canceled, "context canceled")

	assert.Empty(t, collect(t, s))
}

func TestCommandCapture_MissingBinary(t *testing.T) {
	_, err := commandCapture("definitely-not-a-recorder-binary -q")(context.Background())
	require.ErrorIs(t, err, errNoCapture)
}
