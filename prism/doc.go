// Package prism writes and reads the PRISM explicit-model file triple
// (.sta/.tra/.lab). Writing an explicit CTMC out and parsing it back
// yields an isomorphic CTMC, up to label normalisation.
package prism
