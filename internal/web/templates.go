package web

import "html/template"

// pageCSS is shared by the authoring and wish pages.
const pageCSS = `
  :root { --accent: #e03131; --accent-2: #2f9e44; }
  * { box-sizing: border-box; }
  body { font-family: system-ui, -apple-system, "Segoe UI", sans-serif; margin: 0;
         background: linear-gradient(160deg, #101820 0%, #1b2a38 100%); color: #f1f3f5; }
  main { max-width: 680px; margin: 0 auto; padding: 28px 20px 60px; }
  h1 { text-align: center; font-size: 30px; margin: 12px 0 4px; }
  .card { background: rgba(255,255,255,0.06); border: 1px solid rgba(255,255,255,0.12);
          border-radius: 14px; padding: 20px; margin-top: 20px; }
  label { display: block; margin-top: 14px; font-weight: 600; font-size: 14px; }
  input, textarea { width: 100%; padding: 9px 10px; margin-top: 5px; border-radius: 8px;
          border: 1px solid rgba(255,255,255,0.25); background: rgba(0,0,0,0.25); color: inherit; }
  textarea { min-height: 70px; resize: vertical; }
  button { margin-top: 14px; margin-right: 8px; padding: 10px 18px; border: 0; border-radius: 8px;
           background: var(--accent); color: #fff; font-weight: 600; cursor: pointer; }
  button.secondary { background: rgba(255,255,255,0.15); }
  button.play { background: var(--accent-2); display: none; }
  img.group-photo { display: block; max-width: 240px; border-radius: 12px; margin: 14px auto; }
  .wish-greeting { font-size: 20px; line-height: 1.5; text-align: center; }
  .status { margin-top: 12px; font-size: 14px; min-height: 18px; }
  .links { margin-top: 10px; font-size: 13px; word-break: break-all; }
  .links a { color: #91c9ff; }
  canvas#confetti-canvas { position: fixed; inset: 0; pointer-events: none; }
  footer { text-align: center; margin-top: 28px; font-size: 13px; }
  footer a { color: #91c9ff; }
`

// authoringPage is the sender-facing view: configure the group defaults and
// mint personalized links.
var authoringPage = template.Must(template.New("authoring").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.GroupName}} — wish links</title>
  <style>` + pageCSS + `</style>
</head>
<body>
<main>
  <h1>{{.GroupName}}</h1>
  <div class="card">
    <img class="group-photo" id="group-photo" src="{{.GroupPhoto}}" alt="group photo">
    <label for="group-name">Group name</label>
    <input id="group-name" value="{{.GroupName}}">
    <label for="greeting-text">Greeting</label>
    <textarea id="greeting-text">{{.Greeting}}</textarea>
    <label for="group-photo-url">Group photo URL</label>
    <input id="group-photo-url" value="{{.GroupPhoto}}">
    <label for="audio-url">Audio clip URL</label>
    <input id="audio-url" value="{{.AudioURL}}">
    <label for="sender-name">Your name (optional)</label>
    <input id="sender-name" value="{{.Sender}}" placeholder="e.g. Uthuman">
  </div>
  <div class="card">
    <label for="recipient-name">Recipient's name</label>
    <input id="recipient-name" placeholder="e.g. Aisha">
    <button id="create-wish-btn">Create &amp; copy wish link</button>
    <button id="open-link-btn" class="secondary">Preview wish</button>
    <div class="status" id="status"></div>
    <div class="links" id="links"></div>
  </div>
  <footer><a href="/guide">How wish links work</a></footer>
</main>
<script>
(function(){
  var id = function(n){ return document.getElementById(n); };

  function fields(){
    return {
      groupName: id('group-name').value,
      greeting: id('greeting-text').value,
      groupPhoto: id('group-photo-url').value,
      audioUrl: id('audio-url').value,
      sender: id('sender-name').value
    };
  }

  function saveDefaults(){
    fetch('/api/defaults/', {
      method: 'PUT',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(fields())
    }).catch(function(){});
  }

  // A fragment arriving here carries an authoring default set; merge it
  // into the inputs. The fragment never reaches the server, so the page
  // hands its own location over for resolution.
  function seedFromLocation(){
    if(!location.hash){ return; }
    fetch('/api/resolve', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({url: location.href})
    }).then(function(resp){ return resp.json(); }).then(function(state){
      if(state.title){ id('group-name').value = state.title; }
      if(state.greeting){ id('greeting-text').value = state.greeting; }
      if(state.group_photo){
        id('group-photo-url').value = state.group_photo;
        id('group-photo').src = state.group_photo;
      }
      if(state.audio_url){ id('audio-url').value = state.audio_url; }
      if(state.sender){ id('sender-name').value = state.sender; }
    }).catch(function(){});
  }
  window.addEventListener('hashchange', seedFromLocation);
  seedFromLocation();

  ['group-name','greeting-text','group-photo-url','audio-url','sender-name'].forEach(function(n){
    id(n).addEventListener('blur', saveDefaults);
  });
  id('group-photo-url').addEventListener('blur', function(){
    id('group-photo').src = id('group-photo-url').value;
  });

  function copyWithFallback(text, okMsg){
    navigator.clipboard.writeText(text).then(function(){
      id('status').textContent = okMsg;
    }).catch(function(){
      prompt('Copy this link:', text);
    });
  }

  id('create-wish-btn').addEventListener('click', function(){
    var recipient = id('recipient-name').value.trim();
    if(!recipient){
      id('status').textContent = 'Please enter a recipient name.';
      return;
    }
    var body = fields();
    body.recipient = recipient;
    fetch('/api/links', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(body)
    }).then(function(resp){
      if(!resp.ok){ return resp.json().then(function(e){ throw new Error(e.error); }); }
      return resp.json();
    }).then(function(links){
      var preferred = links.path_url || links.query_url;
      id('links').innerHTML = '';
      [links.path_url, links.query_url, links.fragment_url].forEach(function(u){
        if(!u) return;
        var a = document.createElement('a');
        a.href = u; a.textContent = u; a.target = '_blank';
        id('links').appendChild(a);
        id('links').appendChild(document.createElement('br'));
      });
      copyWithFallback(preferred, 'Personalized link copied! Share it with ' + recipient + '.');
    }).catch(function(err){
      id('status').textContent = err.message || 'Could not create the link.';
    });
  });

  id('open-link-btn').addEventListener('click', function(){
    var recipient = id('recipient-name').value.trim();
    var body = fields();
    if(recipient){ body.recipient = recipient; }
    fetch('/api/links', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(body)
    }).then(function(resp){
      if(resp.ok){ return resp.json(); }
      // Without a recipient the server refuses; fall back to a fragment
      // link built right here so the preview still opens.
      var state = fields();
      var h = btoa(encodeURIComponent(JSON.stringify(state)));
      return { fragment_url: location.origin + '/{{.PageName}}#' + h };
    }).then(function(links){
      window.open(links.fragment_url, '_blank');
      saveDefaults();
    });
  });
})();
</script>
</body>
</html>`))

// wishPage is the recipient-facing view. When the server could resolve the
// payload (path or query links) the fields arrive pre-rendered; fragment
// links are resolved by the page itself, since fragments never reach the
// server.
var wishPage = template.Must(template.New("wish").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>` + pageCSS + `</style>
</head>
<body>
<main>
  <div class="card" id="wish-view">
    <h1 id="wish-title">{{.Title}}</h1>
    <img class="group-photo" id="group-photo" src="{{.GroupPhoto}}" alt="group photo">
    <p class="wish-greeting" id="wish-greeting">{{if .Resolved}}<strong>Dear {{.Recipient}}</strong><br>{{.Greeting}}{{end}}</p>
    <div style="text-align:center">
      <button id="play-btn" class="play">&#9654; Play</button>
      <button id="celebrate-btn" class="secondary">Celebrate!</button>
    </div>
    <div class="status" id="status"></div>
  </div>
  <footer><a href="/">Make your own wish link</a></footer>
</main>
<audio id="audio" src="{{.AudioURL}}" preload="auto"></audio>
<canvas id="confetti-canvas"></canvas>
<script>
var BOOT = {{.Boot}};
(function(){
  var id = function(n){ return document.getElementById(n); };
  var audio = id('audio');
  var sock = null;

  function render(state){
    if(!state.recipient_view){
      // Keep the fragment: a recipient-less payload is an authoring
      // default set and seeds the authoring page.
      location.replace('/' + location.hash);
      return;
    }
    document.title = state.title;
    id('wish-title').textContent = state.title;
    if(state.group_photo){ id('group-photo').src = state.group_photo; }
    if(state.audio_url){ audio.src = state.audio_url; }
    var g = id('wish-greeting');
    g.innerHTML = '';
    var strong = document.createElement('strong');
    strong.textContent = 'Dear ' + state.recipient;
    g.appendChild(strong);
    g.appendChild(document.createElement('br'));
    g.appendChild(document.createTextNode(state.greeting));
    begin();
  }

  function resolveFromLocation(){
    fetch('/api/resolve', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({url: location.href})
    }).then(function(resp){ return resp.json(); }).then(render).catch(function(){
      location.replace('/' + location.hash);
    });
  }

  function connect(cb){
    if(sock && sock.readyState === WebSocket.OPEN){ cb(); return; }
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    sock = new WebSocket(proto + location.host + '/ws/playback');
    sock.onopen = cb;
    sock.onmessage = function(ev){
      var msg = JSON.parse(ev.data);
      switch(msg.type){
        case 'state':
          if(msg.state === 'attempting'){ attempt(); }
          break;
        case 'celebrate':
          id('play-btn').style.display = 'none';
          launchConfettiShort();
          break;
        case 'show_play_button':
          id('play-btn').style.display = 'inline-block';
          break;
        case 'playback_failed':
          id('status').textContent = msg.message;
          break;
      }
    };
  }

  function attempt(){
    audio.play().then(function(){
      sock.send(JSON.stringify({type: 'result', ok: true}));
    }).catch(function(){
      sock.send(JSON.stringify({type: 'result', ok: false}));
    });
  }

  function begin(){
    connect(function(){ sock.send(JSON.stringify({type: 'begin'})); });
  }

  id('play-btn').addEventListener('click', function(){
    id('status').textContent = '';
    connect(function(){ sock.send(JSON.stringify({type: 'manual_play'})); });
  });
  id('celebrate-btn').addEventListener('click', begin);

  window.addEventListener('hashchange', resolveFromLocation);

  if(BOOT.resolved){
    begin();
  } else {
    resolveFromLocation();
  }

  // Short confetti burst, self-terminating.
  function launchConfettiShort(){
    var canvas = id('confetti-canvas');
    var ctx = canvas.getContext('2d');
    var W = canvas.width = window.innerWidth;
    var H = canvas.height = window.innerHeight;
    var colors = ['#ff4757','#ff922b','#ffd43b','#2ed573','#3b82f6','#7c3aed'];
    var pieces = [];
    for(var i = 0; i < 80; i++){
      pieces.push({
        x: Math.random() * W,
        y: Math.random() * H - H,
        r: Math.random() * 8 + 4,
        d: Math.random() * 40 + 10,
        color: colors[Math.floor(Math.random() * colors.length)],
        tilt: 0,
        tiltAngle: 0,
        tiltInc: Math.random() * 0.07 + 0.05
      });
    }
    var run = true;
    function frame(){
      if(!run) return;
      ctx.clearRect(0, 0, W, H);
      pieces.forEach(function(p, i){
        p.tiltAngle += p.tiltInc;
        p.y += (Math.cos(p.d) + 3 + p.r / 2) / 2;
        p.x += Math.sin(0.01 * p.d);
        p.tilt = Math.sin(p.tiltAngle - i / 3) * 12;
        ctx.beginPath();
        ctx.lineWidth = p.r;
        ctx.strokeStyle = p.color;
        ctx.moveTo(p.x + p.tilt + p.r / 2, p.y);
        ctx.lineTo(p.x + p.tilt, p.y + p.tilt + p.r / 2);
        ctx.stroke();
        if(p.y > H + 20){ p.y = -10; p.x = Math.random() * W; }
      });
      requestAnimationFrame(frame);
    }
    frame();
    setTimeout(function(){ run = false; ctx.clearRect(0, 0, W, H); }, 5500);
  }
})();
</script>
</body>
</html>`))
