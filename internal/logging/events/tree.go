package events

import "github.com/kestrelaudio/screenvoice/internal/logging"

type TreeTracer struct{}

var Tree = TreeTracer{}

func (TreeTracer) Level(level string, index int) {
	logging.Trace("tree.level", map[string]interface{}{"level": level, "index": index})
}

func (TreeTracer) SectionsBuilt(entity string, count int) {
	logging.Trace("tree.sections-built", map[string]interface{}{"entity": entity, "count": count})
}

func (TreeTracer) CacheInvalidated(entity string) {
	logging.Trace("tree.cache-invalidated", map[string]interface{}{"entity": entity})
}

func (TreeTracer) AssignTarget(entity string) {
	logging.Trace("tree.assign-target", map[string]interface{}{"entity": entity})
}
