package btree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var inserts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "btree_inserts",
	Help: "Number of keys added to B-trees",
})

var duplicateInserts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "btree_duplicate_inserts",
	Help: "Number of inserts rejected because the key was already present",
})

var nodeSplits = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "btree_node_splits",
	Help: "Number of overfull nodes split, by kind of node",
}, []string{"kind"})

var rootSplits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "btree_root_splits",
	Help: "Number of times a tree grew in height",
})

var validationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "btree_validation_failures",
	Help: "Number of failed structure validations, by violated invariant",
}, []string{"invariant"})
