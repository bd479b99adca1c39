package matchstats

import (
	"io"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// ErrDecode marks a document that is not a JSON object of well-formed
// player records.
var ErrDecode = errors.New("invalid dataset document")

const readBufferSize = 4096

var (
	jsonAPI  = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

// decodeObject walks the top level object of r key by key, in document
// order, handing every value to fn. fn must consume the value.
func decodeObject(r io.Reader, fn func(key string, iter *jsoniter.Iterator) error) error {
	iter := jsoniter.Parse(jsonAPI, r, readBufferSize)

	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
	case jsoniter.InvalidValue:
		if iter.Error == io.EOF {
			return errors.Wrap(ErrDecode, "empty document")
		}
		return errors.Wrap(ErrDecode, "document is not valid JSON")
	default:
		return errors.Wrap(ErrDecode, "document is not a JSON object")
	}

	var fnErr error
	ok := iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		if err := fn(key, it); err != nil {
			fnErr = err
			return false
		}
		return true
	})
	if fnErr != nil {
		return fnErr
	}
	if !ok || iter.Error != nil {
		if iter.Error == io.EOF {
			return errors.Wrap(ErrDecode, "unexpected end of document")
		}
		return errors.Wrapf(ErrDecode, "%v", iter.Error)
	}

	if next := iter.WhatIsNext(); next != jsoniter.InvalidValue || iter.Error != io.EOF {
		return errors.Wrap(ErrDecode, "unexpected data after top level object")
	}
	return nil
}

func readRecord(iter *jsoniter.Iterator, player string, record interface{}) error {
	iter.ReadVal(record)
	if iter.Error != nil {
		if iter.Error == io.EOF {
			return errors.Wrapf(ErrDecode, "record of player %q is truncated", player)
		}
		return errors.Wrapf(ErrDecode, "record of player %q: %v", player, iter.Error)
	}
	if err := validate.Struct(record); err != nil {
		return errors.Wrapf(ErrDecode, "record of player %q: %v", player, err)
	}
	return nil
}
