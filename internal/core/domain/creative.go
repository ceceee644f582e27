package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownCreativeKind = errors.New("unknown creative kind")

// CreativeKind tags the variant held by a Creative.
type CreativeKind string

const (
	CreativeImage  CreativeKind = "image"
	CreativeHTML   CreativeKind = "html"
	CreativeVideo  CreativeKind = "video"
	CreativeScript CreativeKind = "script"
	CreativeNative CreativeKind = "native"
)

// Creative is the payload of an advertisement. Exactly one concrete variant
// is held; the set of variants is closed.
type Creative interface {
	Kind() CreativeKind
	sealed()
}

type ImageCreative struct {
	ImageURL string `json:"image"`
}

type HTMLCreative struct {
	Content string `json:"html_content"`
}

type VideoCreative struct {
	VideoURL string `json:"video_url"`
}

type ScriptCreative struct {
	Code string `json:"script_code"`
}

type NativeCreative struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail"`
}

func (ImageCreative) Kind() CreativeKind  { return CreativeImage }
func (HTMLCreative) Kind() CreativeKind   { return CreativeHTML }
func (VideoCreative) Kind() CreativeKind  { return CreativeVideo }
func (ScriptCreative) Kind() CreativeKind { return CreativeScript }
func (NativeCreative) Kind() CreativeKind { return CreativeNative }

func (ImageCreative) sealed()  {}
func (HTMLCreative) sealed()   {}
func (VideoCreative) sealed()  {}
func (ScriptCreative) sealed() {}
func (NativeCreative) sealed() {}

type creativeEnvelope struct {
	Kind CreativeKind    `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalCreative encodes a creative as {"kind": ..., "data": {...}}.
func MarshalCreative(c Creative) ([]byte, error) {
	if c == nil {
		return nil, ErrMissingCreative
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return json.Marshal(creativeEnvelope{Kind: c.Kind(), Data: data})
}

// UnmarshalCreative decodes the envelope written by MarshalCreative.
func UnmarshalCreative(raw []byte) (Creative, error) {
	var env creativeEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode creative: %w", err)
	}
	return DecodeCreative(env.Kind, env.Data)
}

// DecodeCreative builds the variant for kind from its JSON fields.
func DecodeCreative(kind CreativeKind, data []byte) (Creative, error) {
	var (
		c   Creative
		err error
	)
	switch kind {
	case CreativeImage:
		var v ImageCreative
		err = json.Unmarshal(data, &v)
		c = v
	case CreativeHTML:
		var v HTMLCreative
		err = json.Unmarshal(data, &v)
		c = v
	case CreativeVideo:
		var v VideoCreative
		err = json.Unmarshal(data, &v)
		c = v
	case CreativeScript:
		var v ScriptCreative
		err = json.Unmarshal(data, &v)
		c = v
	case CreativeNative:
		var v NativeCreative
		err = json.Unmarshal(data, &v)
		c = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCreativeKind, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s creative: %w", kind, err)
	}
	return c, nil
}
