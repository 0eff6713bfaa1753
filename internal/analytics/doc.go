// Package analytics provides the exploratory batch computations over the
// donation datasets: descriptive statistics, calendar trend totals, top
// entities, categorical distributions, Pearson correlation and the
// facility-vs-state daily total reconciliation.
//
// Every function is a pure transformation of an immutable observation slice;
// nothing here performs I/O or holds state between calls.
package analytics
