// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package termplay

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/userinput"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
	get     bool
}

type featureResult struct {
	data gui.FeatureReqData
	err  error
}

// SetFeature implements gui.GUI interface.
func (tp *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	tp.featureReq <- featureRequest{request: request, args: args}
	return (<-tp.featureRes).err
}

// GetFeature implements gui.GUI interface.
func (tp *TermPlay) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	tp.featureReq <- featureRequest{request: request, get: true}
	res := <-tp.featureRes
	return res.data, res.err
}

func (tp *TermPlay) serviceFeatureRequests(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			tp.featureRes <- featureResult{err: curated.Errorf("termplay: panic in feature request (%v)", r)}
		}
	}()

	if request.get {
		res := featureResult{}
		switch request.request {
		case gui.ReqState:
			res.data = tp.state
		case gui.ReqSetROMName:
			res.data = tp.romName
		case gui.ReqSetSounding:
			res.data = tp.sounding
		default:
			res.err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
		}
		tp.featureRes <- res
		return
	}

	var err error

	switch request.request {
	case gui.ReqSetEventChan:
		tp.events = request.args[0].(chan userinput.Event)

	case gui.ReqSetVisibility:
		// the terminal is always visible

	case gui.ReqState:
		tp.state = request.args[0].(govern.State)

	case gui.ReqSetROMName:
		tp.romName = request.args[0].(string)

	case gui.ReqSetSounding:
		tp.sounding = request.args[0].(bool)

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	// redraw status line with the next frame
	tp.crit.Lock()
	tp.newFrame = true
	tp.crit.Unlock()

	tp.featureRes <- featureResult{err: err}
}
