// Package commands defines the brinput CLI.
//
// Commands
//
//   - mask taxid        Print a tax ID in NNN.NNN.NNN-NN form
//   - mask postalcode   Print a postal code in NNNNN-NNN form
//   - validate          Check a tax ID and print "valid" or the error response
//   - lookup            Resolve a postal code to an address
//   - registration      Normalize and validate a registration read from stdin
//   - serve             Expose validate, lookup and registration over HTTP
//
// Results go to stdout. Logs go to stderr and follow --env.
package commands
