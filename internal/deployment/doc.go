// Package deployment defines the input context handed to the network
// template by the deployment engine.
//
// A [Context] carries two sections: the environment (whose name identifies
// the network) and the template properties (the ordered list of
// subnetworks). Contexts can be read from a YAML context file or built from
// the generic maps an embedding engine already holds. Loading never
// performs semantic validation; that is the generator's job.
package deployment
