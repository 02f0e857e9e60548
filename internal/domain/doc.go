// Package domain holds the use cases presenters talk to. A use case starts
// an asynchronous fetch and reports the outcome to a Subscriber exactly once,
// unless its subscriptions are cleared first.
package domain
