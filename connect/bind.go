package connect

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"state-binder/internal/diagnostic"
	"state-binder/store"
)

// Bind is the positional binding engine. Wrap is the friendlier front; Bind
// exists for call sites that already hold the arguments in order.
func Bind[S, OP, SP, DP, P any](
	mapState StateMapper[S, OP, SP],
	mapDispatch any,
	merge PropsMerger[SP, DP, OP, P],
	opts OptionEnum,
	component Component[P],
) *Connected[S, OP, SP, DP, P] {
	if component == nil {
		panic("connect: component is required")
	}

	return &Connected[S, OP, SP, DP, P]{
		mapState:    mapState,
		mapDispatch: mapDispatch,
		merge:       merge,
		opts:        opts,
		component:   component,
	}
}

// Connected is a component bound to a store. It is inert until Mount.
type Connected[S, OP, SP, DP, P any] struct {
	mapState    StateMapper[S, OP, SP]
	mapDispatch any
	merge       PropsMerger[SP, DP, OP, P]
	opts        OptionEnum
	component   Component[P]

	st      *store.Store[S]
	own     OP
	dp      DP // dispatch props, computed once at mount
	props   P
	mounted bool
	unsub   func()
}

// Mount resolves the dispatch mapper, computes the initial props, renders
// once, and subscribes to the store when a state mapper is present.
func (c *Connected[S, OP, SP, DP, P]) Mount(st *store.Store[S], own OP) error {
	if c.mounted {
		return errors.New("connect: component is already mounted")
	}

	c.st = st
	c.own = own

	dp, err := c.resolveDispatchProps(st.Dispatch)
	if err != nil {
		return err
	}
	c.dp = dp

	props, err := c.computeProps()
	if err != nil {
		return err
	}
	c.props = props
	c.mounted = true

	c.render(props)

	if c.mapState != nil {
		c.unsub = st.Subscribe(c.onStateChange)
	}

	return nil
}

// Props returns the most recently computed props.
func (c *Connected[S, OP, SP, DP, P]) Props() P { return c.props }

// Unmount drops the store subscription. Safe to call repeatedly.
func (c *Connected[S, OP, SP, DP, P]) Unmount() {
	if c.unsub != nil {
		c.unsub()
		c.unsub = nil
	}

	c.mounted = false
}

func (c *Connected[S, OP, SP, DP, P]) resolveDispatchProps(dispatch store.Dispatcher) (DP, error) {
	var zero DP

	switch m := c.mapDispatch.(type) {
	case nil:
		return zero, nil
	case DispatchMapper[OP, DP]:
		return m(dispatch, c.own), nil
	case func(store.Dispatcher, OP) DP:
		return m(dispatch, c.own), nil
	}

	if creators, ok := c.mapDispatch.(DP); ok {
		return bindCreators(creators, dispatch)
	}

	var diags diagnostic.Diagnostics
	diags.AddError("bad-dispatch-mapper", "", fmt.Sprintf(
		"map dispatch must be a DispatchMapper or a %v creator struct, got %T",
		reflect.TypeFor[DP](), c.mapDispatch))

	return zero, diags.Error()
}

func (c *Connected[S, OP, SP, DP, P]) computeProps() (P, error) {
	var sp SP
	if c.mapState != nil {
		sp = c.mapState(c.st.State(), c.own)
	}

	if c.merge != nil {
		return c.merge(sp, c.dp, c.own), nil
	}

	return mergeUnion[SP, DP, OP, P](sp, c.dp, c.own)
}

func (c *Connected[S, OP, SP, DP, P]) onStateChange() {
	props, err := c.computeProps()
	if err != nil {
		// Collisions can appear mid-flight when two sources start carrying
		// different values for the same prop. Surface and skip the render.
		c.st.Logger().Error("connect: props recompute failed", zap.Error(err))
		return
	}

	if c.opts.Has(OptionPure) && propsEqual(props, c.props) {
		return
	}

	c.props = props
	c.render(props)
}

func (c *Connected[S, OP, SP, DP, P]) render(props P) {
	if c.opts.Has(OptionDebugProps) {
		c.st.Logger().Debug("connect: render", zap.String("props", spew.Sdump(props)))
	}

	c.component.Render(props)
}
