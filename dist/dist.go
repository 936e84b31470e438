// seehuhn.de/go/tailplot - visualise the tails of probability distributions
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package dist provides the continuous probability distributions which
// can be plotted by seehuhn.de/go/tailplot.
//
// Four distribution families are supported, identified by [Name].  Each
// family is parametrised by a location and a scale parameter, following
// the usual convention: if Z has the standard form of the distribution,
// then loc + scale*Z has the distribution with parameters {loc, scale}.
package dist

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// Name identifies one of the supported distribution families.
type Name string

// The supported distribution families.  All names are lower-case.
const (
	Normal      Name = "normal"
	Uniform     Name = "uniform"
	Laplace     Name = "laplace"
	Exponential Name = "exponential"
)

// Names lists the supported distribution families in the order they are
// reported in error messages.
var Names = []Name{Normal, Uniform, Laplace, Exponential}

// Params describes a location/scale parameter pair.
//
// The meaning of the fields depends on the distribution family:
//
//   - normal: Loc is the mean, Scale the standard deviation.
//   - uniform: the distribution is uniform on [Loc, Loc+Scale].
//   - laplace: Loc is the mean, Scale the diversity parameter.
//   - exponential: the density is exp(-(x-Loc)/Scale)/Scale for x >= Loc.
//
// Scale must be positive.
type Params struct {
	Loc   float64
	Scale float64
}

// DefaultParams returns the parameters of the standard form of each
// family, {Loc: 0, Scale: 1}.
func DefaultParams() Params {
	return Params{Loc: 0, Scale: 1}
}

// Distribution is a continuous probability distribution with known
// mean, standard deviation and density.  Values are immutable once
// constructed.
type Distribution interface {
	// Name returns the name of the distribution family.
	Name() Name

	// Mean returns the expected value of the distribution.
	Mean() float64

	// StdDev returns the standard deviation of the distribution.
	StdDev() float64

	// PDF returns the probability density at x.
	PDF(x float64) float64
}

// Resolve constructs the distribution with the given name and
// parameters.
//
// If name is not one of the supported families, an
// [UnknownDistributionError] is returned.  Parameter validation is left
// to the individual families; currently the only requirement is
// p.Scale > 0, violations are reported as [InvalidParameterError].
func Resolve(name Name, p Params) (Distribution, error) {
	switch name {
	case Normal:
		return newNormal(p)
	case Uniform:
		return newUniform(p)
	case Laplace:
		return newLaplace(p)
	case Exponential:
		return newExponential(p)
	default:
		return nil, &UnknownDistributionError{Name: name}
	}
}

// UnknownDistributionError indicates that a distribution name is not
// one of the supported families.
type UnknownDistributionError struct {
	Name Name
}

func (e *UnknownDistributionError) Error() string {
	return fmt.Sprintf("unknown distribution %q (valid names are %q, %q, %q and %q)",
		string(e.Name), Names[0], Names[1], Names[2], Names[3])
}

// InvalidParameterError indicates a semantically invalid distribution
// parameter, for example a non-positive scale.
type InvalidParameterError struct {
	Dist  Name
	Param string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s distribution: invalid %s %g",
		e.Dist, e.Param, e.Value)
}

func checkScale(name Name, p Params) error {
	if !(p.Scale > 0) {
		return &InvalidParameterError{Dist: name, Param: "scale", Value: p.Scale}
	}
	return nil
}

type normal struct {
	d distuv.Normal
}

func newNormal(p Params) (Distribution, error) {
	if err := checkScale(Normal, p); err != nil {
		return nil, err
	}
	return normal{distuv.Normal{Mu: p.Loc, Sigma: p.Scale}}, nil
}

func (n normal) Name() Name { return Normal }
func (n normal) Mean() float64 { return n.d.Mean() }
func (n normal) StdDev() float64 { return n.d.StdDev() }
func (n normal) PDF(x float64) float64 { return n.d.Prob(x) }

type uniform struct {
	d distuv.Uniform
}

func newUniform(p Params) (Distribution, error) {
	if err := checkScale(Uniform, p); err != nil {
		return nil, err
	}
	return uniform{distuv.Uniform{Min: p.Loc, Max: p.Loc + p.Scale}}, nil
}

func (u uniform) Name() Name { return Uniform }
func (u uniform) Mean() float64 { return u.d.Mean() }
func (u uniform) StdDev() float64 { return u.d.StdDev() }
func (u uniform) PDF(x float64) float64 { return u.d.Prob(x) }

type laplace struct {
	d distuv.Laplace
}

func newLaplace(p Params) (Distribution, error) {
	if err := checkScale(Laplace, p); err != nil {
		return nil, err
	}
	return laplace{distuv.Laplace{Mu: p.Loc, Scale: p.Scale}}, nil
}

func (l laplace) Name() Name { return Laplace }
func (l laplace) Mean() float64 { return l.d.Mean() }
func (l laplace) StdDev() float64 { return l.d.StdDev() }
func (l laplace) PDF(x float64) float64 { return l.d.Prob(x) }

// exponential is the exponential distribution with rate 1/Scale,
// shifted so that the support starts at Loc.
type exponential struct {
	loc float64
	d   distuv.Exponential
}

func newExponential(p Params) (Distribution, error) {
	if err := checkScale(Exponential, p); err != nil {
		return nil, err
	}
	return exponential{loc: p.Loc, d: distuv.Exponential{Rate: 1 / p.Scale}}, nil
}

func (e exponential) Name() Name { return Exponential }
func (e exponential) Mean() float64 { return e.loc + e.d.Mean() }
func (e exponential) StdDev() float64 { return e.d.StdDev() }
func (e exponential) PDF(x float64) float64 { return e.d.Prob(x - e.loc) }
