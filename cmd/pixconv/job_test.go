package main

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-pixconv/hwy"
	"github.com/ajroetker/go-pixconv/hwy/contrib/pixel"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name string
		want reflect.Type
	}{
		{"uint8", reflect.TypeFor[uint8]()},
		{" float64 ", reflect.TypeFor[float64]()},
		{"float16", reflect.TypeFor[hwy.Float16]()},
		{"cint16", reflect.TypeFor[pixel.ComplexInt16]()},
		{"[]complex64", reflect.TypeFor[[]complex64]()},
		{"[3]int16", reflect.TypeFor[[3]int16]()},
		{"[][2]float32", reflect.TypeFor[[][2]float32]()},
		{"[2][]float32", reflect.TypeFor[[2][]float32]()},
	}
	for _, tt := range tests {
		got, err := parseType(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	for _, bad := range []string{"", "string", "[]", "[0]uint8", "[x]uint8", "[3uint8", "map[int]int"} {
		_, err := parseType(bad)
		assert.Error(t, err, "parseType(%q)", bad)
	}
}

func TestTypeNamesSorted(t *testing.T) {
	names := TypeNames()
	assert.Len(t, names, len(leafTypes))
	assert.IsIncreasing(t, names)
}

func TestJobRun(t *testing.T) {
	lo, hi := -100.0, 100.0
	tests := []struct {
		name string
		job  Job
		want []string
	}{
		{
			name: "saturate scalar",
			job:  Job{From: "float64", To: "uint8", Values: []string{"300.5"}},
			want: []string{"255"},
		},
		{
			name: "truncate toward zero",
			job:  Job{From: "float32", To: "int8", Values: []string{"-7.9"}},
			want: []string{"-7"},
		},
		{
			name: "pair scalars into complex",
			job: Job{From: "[]int32", To: "[]complex64", Lowest: &lo, Highest: &hi,
				Values: []string{"5", "-300", "7"}},
			want: []string{"(5-100i)", "(7+0i)"},
		},
		{
			name: "complex into fixed array",
			job:  Job{From: "complex128", To: "[4]int16", Values: []string{"1+2i"}},
			want: []string{"1", "2", "0", "0"},
		},
		{
			name: "half float limits",
			job:  Job{From: "float32", To: "float16", Values: []string{"1e6"}},
			want: []string{"65504"},
		},
		{
			name: "fixed point destination",
			job:  Job{From: "[]float64", To: "[]fixed26_6", Values: []string{"1.75", "-0.5"}},
			want: []string{"1.75", "-0.5"},
		},
		{
			name: "explicit count",
			job:  Job{From: "[]float64", To: "[]uint8", Count: 2, Values: []string{"1", "2", "3"}},
			want: []string{"1", "2"},
		},
		{
			name: "nan propagates to zero",
			job:  Job{From: "float64", To: "uint8", NaN: "propagate", Values: []string{"NaN"}},
			want: []string{"0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.job.Run()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJobRunErrors(t *testing.T) {
	tests := []struct {
		name   string
		job    Job
		target error
	}{
		{
			name:   "nan rejected",
			job:    Job{From: "float64", To: "uint8", NaN: "reject", Values: []string{"NaN"}},
			target: pixel.ErrNaN,
		},
		{
			name:   "variable length inside composite",
			job:    Job{From: "[2][]float32", To: "uint8", Values: []string{"1"}},
			target: pixel.ErrUnclassifiableType,
		},
		{
			name:   "count beyond fixed source",
			job:    Job{From: "[2]uint8", To: "[]uint8", Count: 3, Values: []string{"1", "2"}},
			target: pixel.ErrComponentCount,
		},
		{
			name:   "count beyond values",
			job:    Job{From: "[]uint8", To: "[]uint8", Count: 3, Values: []string{"1", "2"}},
			target: pixel.ErrScalarCountMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.job.Run()
			assert.ErrorIs(t, err, tt.target)
		})
	}

	plain := []Job{
		{From: "float64", To: "uint8"},
		{From: "bogus", To: "uint8", Values: []string{"1"}},
		{From: "uint8", To: "bogus", Values: []string{"1"}},
		{From: "float64", To: "uint8", NaN: "ignore", Values: []string{"1"}},
		{From: "float64", To: "uint8", Values: []string{"abc"}},
		{From: "float64", To: "uint8", Values: []string{"1+2i"}},
		{From: "[2]uint8", To: "[]uint8", Values: []string{"1", "2", "3"}},
	}
	for _, job := range plain {
		_, err := job.Run()
		assert.Error(t, err, "%+v", job)
	}
}
