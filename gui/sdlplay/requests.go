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

package sdlplay

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
//
// MUST NOT be called from the #mainthread.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return (<-scr.featureRes).err
}

// GetFeature implements gui.GUI interface.
//
// MUST NOT be called from the #mainthread.
func (scr *SdlPlay) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	scr.featureReq <- featureRequest{request: request, get: true}
	res := <-scr.featureRes
	return res.data, res.err
}

// featureRequests have been handed over to the featureReq channel. we service
// any requests on that channel here.
func (scr *SdlPlay) serviceFeatureRequests(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			scr.featureRes <- featureResult{err: curated.Errorf("sdlplay: panic in feature request (%v)", r)}
		}
	}()

	if request.get {
		var data gui.FeatureReqData
		var err error

		switch request.request {
		case gui.ReqSetScale:
			data = scr.scale
		case gui.ReqState:
			data = scr.state
		case gui.ReqSetROMName:
			data = scr.romName
		default:
			err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
		}

		scr.featureRes <- featureResult{data: data, err: err}
		return
	}

	var err error

	switch request.request {
	case gui.ReqSetEventChan:
		scr.events = request.args[0].(chan userinput.Event)

	case gui.ReqSetVisibility:
		scr.showWindow(request.args[0].(bool))

	case gui.ReqSetScale:
		scr.setScale(request.args[0].(float32))

	case gui.ReqState:
		scr.state = request.args[0].(govern.State)
		scr.setTitle()

	case gui.ReqSetROMName:
		scr.romName = request.args[0].(string)
		scr.setTitle()

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	scr.featureRes <- featureResult{err: err}
}
