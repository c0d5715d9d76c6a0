// Command specseq renders the spectral sequence of a transient.
//
// Usage:
//
//	specseq [--config path] [--verbose] <command>
//
// Commands:
//
//	render       build the figure from the configured spectra
//	list         show discovered spectra with their epochs and offsets
//	fetch        download spectra for the configured source
//	telescopes   print the instrument table
//	config init  write a sample configuration file
package main
