package bungie

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"

	"tower/packages/monitoring"
)

// Envelope is the wrapper common to every platform response.
type Envelope[T any] struct {
	Response        T                 `json:"Response"`
	ErrorCode       int               `json:"ErrorCode"`
	ThrottleSeconds int               `json:"ThrottleSeconds"`
	ErrorStatus     string            `json:"ErrorStatus"`
	Message         string            `json:"Message"`
	MessageData     map[string]string `json:"MessageData"`
}

// Validate rejects JSON objects that carry none of the envelope fields.
func (e *Envelope[T]) Validate() error {
	if e.ErrorCode == 0 && e.ErrorStatus == "" {
		return errors.New("missing ErrorCode and ErrorStatus")
	}
	return nil
}

// Err interprets the envelope's status fields. It returns nil on Success.
func (e *Envelope[T]) Err() error {
	if e.ErrorCode == ErrorCodeSuccess {
		return nil
	}
	return &BungieError{
		ErrorCode:       e.ErrorCode,
		Message:         e.Message,
		ErrorStatus:     e.ErrorStatus,
		ThrottleSeconds: e.ThrottleSeconds,
	}
}

// validator lets a decoded type enforce fields that encoding/json treats as
// optional.
type validator interface {
	Validate() error
}

var errNullBody = errors.New("null body for non-nullable type")

// Decode unmarshals data into T. Every failure, including a literal null for
// a type that cannot hold one, is a *DeserializationError naming source.
func Decode[T any](source string, data []byte) (T, error) {
	var out T
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) && !nullable[T]() {
		return out, newDeserializationError(source, string(data), errNullBody)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, newDeserializationError(source, string(data), err)
	}
	if v, ok := any(&out).(validator); ok {
		if err := v.Validate(); err != nil {
			var zero T
			return zero, newDeserializationError(source, string(data), err)
		}
	}
	return out, nil
}

func nullable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return true
	}
	return false
}

func decode[T any](url string, text string) (T, error) {
	return Decode[T](url, []byte(text))
}

// GetTyped issues a GET and decodes the body into T. params may be nil.
func GetTyped[T any](ctx context.Context, c *Client, url string, params Params) (T, error) {
	text, err := c.GetWithParams(ctx, url, params)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](url, text)
}

// PostTyped issues a POST with a pre-serialized JSON body and decodes the
// response into T.
func PostTyped[T any](ctx context.Context, c *Client, url string, body []byte, params Params) (T, error) {
	text, err := c.PostWithParams(ctx, url, body, params)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](url, text)
}

// GetEnvelope decodes a GET response into Envelope[T] without interpreting
// its ErrorCode.
func GetEnvelope[T any](ctx context.Context, c *Client, url string, params Params) (*Envelope[T], error) {
	env, err := GetTyped[Envelope[T]](ctx, c, url, params)
	if err != nil {
		return nil, err
	}
	return &env, nil
}

func PostEnvelope[T any](ctx context.Context, c *Client, url string, body []byte, params Params) (*Envelope[T], error) {
	env, err := PostTyped[Envelope[T]](ctx, c, url, body, params)
	if err != nil {
		return nil, err
	}
	return &env, nil
}

// getResponse is the shape every endpoint helper shares: decode the envelope,
// turn a non-Success ErrorCode into a *BungieError, hand back the payload.
func getResponse[T any](ctx context.Context, c *Client, url string, params Params) (*T, error) {
	env, err := GetEnvelope[T](ctx, c, url, params)
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		monitoring.BungieErrorCode.WithLabelValues(env.ErrorStatus).Inc()
		return nil, err
	}
	return &env.Response, nil
}

func postResponse[T any](ctx context.Context, c *Client, url string, body []byte) (*T, error) {
	env, err := PostEnvelope[T](ctx, c, url, body, nil)
	if err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		monitoring.BungieErrorCode.WithLabelValues(env.ErrorStatus).Inc()
		return nil, err
	}
	return &env.Response, nil
}
