package core

import (
	"encoding/json"
	"time"
)

// blockTimestampEpochMs and blockIntervalMs anchor BlockTimestampType's
// slot-based encoding to wall-clock time. These mirror the values baked
// into AntelopeIO/spring libraries/chain/block_timestamp.hpp: the epoch is
// 2000-01-01T00:00:00.000 UTC and each slot spans 500ms.
const (
	blockTimestampEpochMs int64 = 946684800000
	blockIntervalMs       int64 = 500
)

const (
	timeLayout       = "2006-01-02T15:04:05.000"
	timeLayoutNoSecs = "2006-01-02T15:04"
)

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(timeLayoutNoSecs, s)
	if err != nil {
		return time.Time{}, newErrorf(KindInvalidValue, "parseDate", "could not parse time %q", s)
	}
	return t.UTC(), nil
}

func timestampToBlockSlot(t time.Time) uint32 {
	msSinceEpoch := t.UnixMilli() - blockTimestampEpochMs
	return uint32(msSinceEpoch / blockIntervalMs)
}

// TimePoint is a UTC instant stored as microseconds since the Unix epoch.
type TimePoint struct {
	micros int64
}

func NewTimePointFromString(s string) (TimePoint, error) {
	t, err := parseDate(s)
	if err != nil {
		return TimePoint{}, err
	}
	return TimePointFromTime(t), nil
}

func TimePointFromTime(t time.Time) TimePoint {
	return TimePoint{micros: t.UnixMicro()}
}

func TimePointFromMicros(micros int64) TimePoint { return TimePoint{micros: micros} }

func (t TimePoint) Micros() int64 { return t.micros }

func (t TimePoint) Time() time.Time {
	return time.UnixMicro(t.micros).UTC()
}

// String truncates sub-millisecond precision: the wire value carries
// microseconds but the textual form only ever shows milliseconds.
func (t TimePoint) String() string {
	return t.Time().Format(timeLayout)
}

func (t TimePoint) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *TimePoint) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return newErrorf(KindInvalidValue, "TimePoint.UnmarshalJSON", "%v", err)
	}
	parsed, err := NewTimePointFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func EncodeTimePoint(bs *ByteStream, v TimePoint) { EncodeInt64(bs, v.micros) }

func DecodeTimePoint(bs *ByteStream) (TimePoint, error) {
	v, err := DecodeInt64(bs)
	if err != nil {
		return TimePoint{}, err
	}
	return TimePoint{micros: v}, nil
}

// TimePointSec is a UTC instant stored as seconds since the Unix epoch.
type TimePointSec struct {
	secs uint32
}

func NewTimePointSecFromString(s string) (TimePointSec, error) {
	t, err := parseDate(s)
	if err != nil {
		return TimePointSec{}, err
	}
	return TimePointSecFromTime(t), nil
}

func TimePointSecFromTime(t time.Time) TimePointSec {
	return TimePointSec{secs: uint32(t.UnixMilli() / 1000)}
}

func TimePointSecFromUint32(secs uint32) TimePointSec { return TimePointSec{secs: secs} }

func (t TimePointSec) Uint32() uint32 { return t.secs }

func (t TimePointSec) Time() time.Time {
	return time.UnixMilli(int64(t.secs) * 1000).UTC()
}

func (t TimePointSec) String() string { return t.Time().Format(timeLayout) }

func (t TimePointSec) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *TimePointSec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return newErrorf(KindInvalidValue, "TimePointSec.UnmarshalJSON", "%v", err)
	}
	parsed, err := NewTimePointSecFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func EncodeTimePointSec(bs *ByteStream, v TimePointSec) { EncodeUint32(bs, v.secs) }

func DecodeTimePointSec(bs *ByteStream) (TimePointSec, error) {
	v, err := DecodeUint32(bs)
	if err != nil {
		return TimePointSec{}, err
	}
	return TimePointSec{secs: v}, nil
}

// BlockTimestampType stores a UTC instant as a slot index (500ms per slot)
// since blockTimestampEpochMs, the representation blocks themselves carry.
type BlockTimestampType struct {
	slot uint32
}

func NewBlockTimestampFromString(s string) (BlockTimestampType, error) {
	t, err := parseDate(s)
	if err != nil {
		return BlockTimestampType{}, err
	}
	return BlockTimestampFromTime(t), nil
}

func BlockTimestampFromTime(t time.Time) BlockTimestampType {
	return BlockTimestampType{slot: timestampToBlockSlot(t)}
}

func BlockTimestampFromUint32(slot uint32) BlockTimestampType { return BlockTimestampType{slot: slot} }

func (t BlockTimestampType) Uint32() uint32 { return t.slot }

func (t BlockTimestampType) Time() time.Time {
	ms := int64(t.slot)*blockIntervalMs + blockTimestampEpochMs
	return time.UnixMilli(ms).UTC()
}

func (t BlockTimestampType) String() string { return t.Time().Format(timeLayout) }

func (t BlockTimestampType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *BlockTimestampType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return newErrorf(KindInvalidValue, "BlockTimestampType.UnmarshalJSON", "%v", err)
	}
	parsed, err := NewBlockTimestampFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func EncodeBlockTimestampType(bs *ByteStream, v BlockTimestampType) { EncodeUint32(bs, v.slot) }

func DecodeBlockTimestampType(bs *ByteStream) (BlockTimestampType, error) {
	v, err := DecodeUint32(bs)
	if err != nil {
		return BlockTimestampType{}, err
	}
	return BlockTimestampType{slot: v}, nil
}
